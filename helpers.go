package sdk

import "strings"

// Header returns the first value of the named header, matched case-insensitively.
// It returns "" when the header is absent.
func (r *Request) Header(name string) string {
	for k, values := range r.Headers {
		if strings.EqualFold(k, name) && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// HeaderValues returns every value of the named header, matched case-insensitively.
func (r *Request) HeaderValues(name string) []string {
	var out []string
	for k, values := range r.Headers {
		if strings.EqualFold(k, name) {
			out = append(out, values...)
		}
	}
	return out
}

// MethodOr returns the request method, or def when none was sent.
func (r *Request) MethodOr(def string) string {
	if r.Method == nil {
		return def
	}
	return *r.Method
}
