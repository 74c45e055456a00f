package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/portalgrid/portalgrid-go/routes"
)

// RecordsClient wraps the per-entity CRUD and relationship endpoints. Every
// method is a thin URL-and-verb builder delegating to the core request path.
type RecordsClient struct {
	client *Client
}

// Create inserts a record into an entity set via POST /_api/{set}.
func (r *RecordsClient) Create(ctx context.Context, entitySet string, record Record) (*Result, error) {
	if err := r.ready(entitySet); err != nil {
		return nil, err
	}
	body, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return r.client.do(ctx, RequestDescriptor{
		Method: http.MethodPost,
		Path:   routes.API + "/" + entitySet,
		Body:   body,
	})
}

// Update patches a record via PATCH /_api/{set}({id}).
func (r *RecordsClient) Update(ctx context.Context, entitySet string, id uuid.UUID, record Record) (*Result, error) {
	if err := r.ready(entitySet); err != nil {
		return nil, err
	}
	body, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return r.client.do(ctx, RequestDescriptor{
		Method: http.MethodPatch,
		Path:   routes.API + "/" + entityRef(entitySet, id.String()),
		Body:   body,
	})
}

// Delete removes a record via DELETE /_api/{set}({id}).
func (r *RecordsClient) Delete(ctx context.Context, entitySet string, id uuid.UUID) error {
	if err := r.ready(entitySet); err != nil {
		return err
	}
	_, err := r.client.do(ctx, RequestDescriptor{
		Method: http.MethodDelete,
		Path:   routes.API + "/" + entityRef(entitySet, id.String()),
	})
	return err
}

// Get retrieves a single record via GET /_api/{set}({id}). The query string,
// if any, is passed through verbatim (no escaping or option building).
func (r *RecordsClient) Get(ctx context.Context, entitySet string, id uuid.UUID, query string) (*Result, error) {
	if err := r.ready(entitySet); err != nil {
		return nil, err
	}
	path := routes.API + "/" + entityRef(entitySet, id.String())
	if query != "" {
		path += "?" + strings.TrimPrefix(query, "?")
	}
	return r.client.do(ctx, RequestDescriptor{Path: path})
}

// Query lists records via GET /_api/{set}[?query]. The query string is passed
// through verbatim.
func (r *RecordsClient) Query(ctx context.Context, entitySet string, query string) (*Result, error) {
	if err := r.ready(entitySet); err != nil {
		return nil, err
	}
	path := routes.API + "/" + entitySet
	if query != "" {
		path += "?" + strings.TrimPrefix(query, "?")
	}
	return r.client.do(ctx, RequestDescriptor{Path: path})
}

// Associate links a related record into a collection-valued navigation
// property via POST /_api/{set}({id})/{nav}/$ref.
func (r *RecordsClient) Associate(ctx context.Context, entitySet string, id uuid.UUID, navigation, relatedSet string, relatedID uuid.UUID) error {
	if err := r.ready(entitySet); err != nil {
		return err
	}
	if strings.TrimSpace(navigation) == "" || strings.TrimSpace(relatedSet) == "" {
		return fmt.Errorf("sdk: navigation property and related entity set required")
	}
	ref := map[string]string{
		"@odata.id": r.client.buildURL(routes.API + "/" + entityRef(relatedSet, relatedID.String())),
	}
	body, err := json.Marshal(ref)
	if err != nil {
		return err
	}
	_, err = r.client.do(ctx, RequestDescriptor{
		Method: http.MethodPost,
		Path:   routes.API + "/" + entityRef(entitySet, id.String()) + "/" + navigation + "/$ref",
		Body:   body,
	})
	return err
}

// Disassociate unlinks a related record via
// DELETE /_api/{set}({id})/{nav}({relatedId})/$ref.
func (r *RecordsClient) Disassociate(ctx context.Context, entitySet string, id uuid.UUID, navigation string, relatedID uuid.UUID) error {
	if err := r.ready(entitySet); err != nil {
		return err
	}
	if strings.TrimSpace(navigation) == "" {
		return fmt.Errorf("sdk: navigation property required")
	}
	_, err := r.client.do(ctx, RequestDescriptor{
		Method: http.MethodDelete,
		Path:   routes.API + "/" + entityRef(entitySet, id.String()) + "/" + entityRef(navigation, relatedID.String()) + "/$ref",
	})
	return err
}

// SetValue updates a single property via PUT /_api/{set}({id})/{property}.
func (r *RecordsClient) SetValue(ctx context.Context, entitySet string, id uuid.UUID, property string, value any) error {
	if err := r.ready(entitySet); err != nil {
		return err
	}
	if strings.TrimSpace(property) == "" {
		return fmt.Errorf("sdk: property name required")
	}
	body, err := json.Marshal(map[string]any{"value": value})
	if err != nil {
		return err
	}
	_, err = r.client.do(ctx, RequestDescriptor{
		Method: http.MethodPut,
		Path:   routes.API + "/" + entityRef(entitySet, id.String()) + "/" + property,
		Body:   body,
	})
	return err
}

// DeleteValue clears a single property via DELETE /_api/{set}({id})/{property}.
func (r *RecordsClient) DeleteValue(ctx context.Context, entitySet string, id uuid.UUID, property string) error {
	if err := r.ready(entitySet); err != nil {
		return err
	}
	if strings.TrimSpace(property) == "" {
		return fmt.Errorf("sdk: property name required")
	}
	_, err := r.client.do(ctx, RequestDescriptor{
		Method: http.MethodDelete,
		Path:   routes.API + "/" + entityRef(entitySet, id.String()) + "/" + property,
	})
	return err
}

func (r *RecordsClient) ready(entitySet string) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("sdk: records client not initialized")
	}
	if strings.TrimSpace(entitySet) == "" {
		return fmt.Errorf("sdk: entity set required")
	}
	return nil
}
