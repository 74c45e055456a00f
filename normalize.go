package sdk

import "strings"

// Protocol-internal annotation keys stripped from list records.
const (
	odataPrefix      = "@odata."
	dynamicsPrefix   = "@Microsoft.Dynamics.CRM."
	etagKey          = "@odata.etag"
	totalCountKey    = "@Microsoft.Dynamics.CRM.totalrecordcount"
	countExceededKey = "@Microsoft.Dynamics.CRM.totalrecordcountlimitexceeded"
)

// Record is a single entity as returned by the Web API, annotation keys removed.
type Record = map[string]any

// Metadata carries the list-level annotations the server attached, when present.
type Metadata struct {
	// Count is the total record count across pages.
	Count *int64
	// CountLimitExceeded reports that the server capped the count.
	CountLimitExceeded *bool
}

// Result is the normalized outcome of a Web API call. List responses populate
// Records and Metadata; everything else passes through unchanged in Raw.
type Result struct {
	Records  []Record
	Metadata Metadata
	Raw      any
}

// IsList reports whether the response had the OData list shape.
func (r *Result) IsList() bool { return r != nil && r.Records != nil }

// normalize reshapes a decoded response body. Pure, never fails: bodies
// without the list shape are returned untouched in Raw, and malformed
// annotation values are treated as absent.
func normalize(body any) *Result {
	obj, ok := body.(map[string]any)
	if !ok {
		return &Result{Raw: body}
	}
	list, ok := obj["value"].([]any)
	if !ok {
		return &Result{Raw: body}
	}
	records := make([]Record, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		record := make(Record, len(entry))
		for key, value := range entry {
			if isAnnotationKey(key) {
				continue
			}
			record[key] = value
		}
		records = append(records, record)
	}
	result := &Result{Records: records}
	if count, ok := obj[totalCountKey].(float64); ok {
		result.Metadata.Count = Int64Ptr(int64(count))
	}
	if exceeded, ok := obj[countExceededKey].(bool); ok {
		result.Metadata.CountLimitExceeded = BoolPtr(exceeded)
	}
	return result
}

func isAnnotationKey(key string) bool {
	return key == etagKey ||
		strings.HasPrefix(key, odataPrefix) ||
		strings.HasPrefix(key, dynamicsPrefix)
}
