package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/portalgrid/portalgrid-go/headers"
	"github.com/portalgrid/portalgrid-go/routes"
)

// uploadChunkSize is the fixed block size of the chunked upload protocol.
// Package-level so tests can shrink it.
var uploadChunkSize = 50 * 1024 * 1024

// FilesClient uploads file column content through the chunked upload protocol:
// one initialization call that opens a session, then one block call per chunk,
// all in flight concurrently. The server finalizes the file once every block
// for the session token has arrived; no explicit commit call exists.
type FilesClient struct {
	client *Client
}

// Upload stores content in the file column of the referenced record.
//
// Every chunk is attempted regardless of sibling failures; when one or more
// chunks still fail after their own transport retries, Upload returns an
// *UploadError aggregating the failure count. An initialization failure is
// returned unchanged and no block call is made.
func (f *FilesClient) Upload(ctx context.Context, entityName string, entityID uuid.UUID, fileName string, content []byte) error {
	if f == nil || f.client == nil {
		return fmt.Errorf("sdk: files client not initialized")
	}
	if strings.TrimSpace(entityName) == "" {
		return fmt.Errorf("sdk: entity name required")
	}
	if strings.TrimSpace(fileName) == "" {
		return fmt.Errorf("sdk: file name required")
	}
	// A zero-byte upload would issue no block calls and the session would
	// never finalize server-side, so refuse it outright.
	if len(content) == 0 {
		return fmt.Errorf("sdk: refusing to upload empty file %q", fileName)
	}
	token, err := f.initialize(ctx, entityName, entityID, fileName, len(content))
	if err != nil {
		return err
	}
	total := (len(content) + uploadChunkSize - 1) / uploadChunkSize
	outcomes := make([]error, total)
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		offset := i * uploadChunkSize
		end := offset + uploadChunkSize
		if end > len(content) {
			end = len(content)
		}
		wg.Add(1)
		go func(i, offset int, chunk []byte) {
			defer wg.Done()
			outcomes[i] = f.uploadBlock(ctx, token, fileName, offset, len(content), chunk)
		}(i, offset, content[offset:end])
	}
	wg.Wait()
	failed := 0
	for _, err := range outcomes {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		return &UploadError{Failed: failed, Total: total}
	}
	return nil
}

// initialize opens an upload session and returns the opaque session token.
func (f *FilesClient) initialize(ctx context.Context, entityName string, entityID uuid.UUID, fileName string, size int) (string, error) {
	h := http.Header{}
	h.Set(headers.FileName, fileName)
	h.Set(headers.FileSize, strconv.Itoa(size))
	res, err := f.client.do(ctx, RequestDescriptor{
		Method:  http.MethodPost,
		Path:    routes.FileInitializeUpload + "/" + entityRef(entityName, entityID.String()) + "/blob",
		Headers: h,
	})
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", fmt.Errorf("sdk: upload initialization returned no session token")
	}
	token, _ := res.Raw.(string)
	if token == "" {
		return "", fmt.Errorf("sdk: upload initialization returned no session token")
	}
	return token, nil
}

func (f *FilesClient) uploadBlock(ctx context.Context, token, fileName string, offset, fileSize int, chunk []byte) error {
	values := url.Values{}
	values.Set("offset", strconv.Itoa(offset))
	values.Set("fileSize", strconv.Itoa(fileSize))
	values.Set("chunkSize", strconv.Itoa(len(chunk)))
	values.Set("token", token)
	h := http.Header{}
	h.Set(headers.FileName, fileName)
	_, err := f.client.do(ctx, RequestDescriptor{
		Method:      http.MethodPut,
		Path:        routes.FileUploadBlock + "?" + values.Encode(),
		Headers:     h,
		Body:        chunk,
		ContentType: "application/octet-stream",
	})
	return err
}
