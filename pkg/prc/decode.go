package prc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var errUnexpectedShape = errors.New("unexpected payload shape")

// decodeRecords accepts either a JSON array or a single JSON object.
// A single object yields one record, null yields none.
func decodeRecords[T any](data json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	switch trimmed[0] {
	case '[':
		records := make([]T, 0)
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		var record T
		if err := json.Unmarshal(trimmed, &record); err != nil {
			return nil, err
		}
		return []T{record}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnexpectedShape, trimmed[0])
	}
}

func decodeRecord[T any](data json.RawMessage) (T, error) {
	var record T
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return record, fmt.Errorf("%w: expected object", errUnexpectedShape)
	}
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return record, err
	}
	return record, nil
}

func fetchList[T any](ctx context.Context, s *serverClient, endpoint string, serverID int64) ([]T, error) {
	data, err := s.dispatch(ctx, http.MethodGet, endpoint, serverID, nil)
	if err != nil {
		return nil, err
	}
	records, err := decodeRecords[T](data)
	if err != nil {
		return nil, s.transportFailure(serverID, &TransportError{Method: http.MethodGet, Endpoint: endpoint, StatusCode: http.StatusOK, Err: err})
	}
	return records, nil
}

func fetchOne[T any](ctx context.Context, s *serverClient, method string, endpoint string, serverID int64, body interface{}) (T, error) {
	data, err := s.dispatch(ctx, method, endpoint, serverID, body)
	if err != nil {
		var zero T
		return zero, err
	}
	record, err := decodeRecord[T](data)
	if err != nil {
		return record, s.transportFailure(serverID, &TransportError{Method: method, Endpoint: endpoint, StatusCode: http.StatusOK, Err: err})
	}
	return record, nil
}
