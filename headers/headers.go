// Package headers defines HTTP header constants used by the portalgrid SDK.
// This is the single source of truth for header names sent on Web API requests.
package headers

const (
	// AntiforgeryToken carries the request verification token proving
	// request origin. Its value comes from the configured TokenProvider.
	AntiforgeryToken = "__RequestVerificationToken" //nolint:gosec // This is a header name, not a credential

	// Prefer asks the Web API to include OData annotations on responses;
	// the SDK relies on them for list metadata.
	Prefer = "Prefer"

	// ODataVersion and ODataMaxVersion pin the protocol version the portal
	// Web API speaks.
	ODataVersion    = "OData-Version"
	ODataMaxVersion = "OData-MaxVersion"

	// FileName identifies the uploaded file on both file upload phases.
	FileName = "x-ms-file-name"

	// FileSize carries the total byte size on the upload initialization call.
	FileSize = "x-ms-file-size"
)
