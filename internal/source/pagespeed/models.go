package pagespeed

import "encoding/json"

// APIResponse is the subset of the PageSpeed Insights v5 response the client reads.
// Objects are pointers so that an absent key can be told apart from a zero value.
type APIResponse struct {
	LighthouseResult *LighthouseResult `json:"lighthouseResult"`
	Error            *APIError         `json:"error"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LighthouseResult struct {
	Categories *Categories `json:"categories"`
	Audits     *Audits     `json:"audits"`
}

type Categories struct {
	Performance   *Category `json:"performance"`
	Accessibility *Category `json:"accessibility"`
	BestPractices *Category `json:"best-practices"`
	SEO           *Category `json:"seo"`
}

// Category score is a fraction in [0, 1], null when Lighthouse could not score it.
type Category struct {
	Score OptionalFloat `json:"score"`
}

type Audits struct {
	SpeedIndex             *Audit `json:"speed-index"`
	FirstContentfulPaint   *Audit `json:"first-contentful-paint"`
	LargestContentfulPaint *Audit `json:"largest-contentful-paint"`
}

type Audit struct {
	NumericValue OptionalFloat `json:"numericValue"`
}

// OptionalFloat tells an absent key (Present is false) from an explicit
// JSON null (Present is true, Value is nil).
type OptionalFloat struct {
	Value   *float64
	Present bool
}

func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}
