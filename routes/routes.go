// Package routes provides the Web API route constants shared by the SDK's
// service clients to prevent path mismatches.
package routes

// Route paths are relative to the hosting site origin.
const (
	// API is the root of the portal Web API surface.
	API = "/_api"

	// FileInitializeUpload starts a chunked file upload session. The entity
	// reference segment ("{entityName}({id})/blob") is appended per call.
	FileInitializeUpload = "/_api/file/InitializeUpload"

	// FileUploadBlock receives one block of a chunked upload. Offset, total
	// file size, block size, and the session token travel as query parameters.
	FileUploadBlock = "/_api/file/UploadBlock/blob"
)
