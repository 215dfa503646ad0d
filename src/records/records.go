// Package records implements the per-entity record services: input
// validation and coercion on create, shallow-merge updates, and id
// assignment. Handlers hand raw request bodies down here and get persisted
// records back.
package records

import (
	"encoding/json"
	"errors"
	"fmt"

	"kitawise-server/src/apperrors"
	"kitawise-server/src/db"
)

// mergeDocument applies a partial update onto a stored document. Only keys
// present in patch change; identity and creation metadata can never be
// overwritten from the outside.
func mergeDocument(stored json.RawMessage, patch []byte) (json.RawMessage, error) {
	var base map[string]json.RawMessage
	if err := json.Unmarshal(stored, &base); err != nil {
		return nil, fmt.Errorf("decode stored document: %w", err)
	}

	var delta map[string]json.RawMessage
	if err := json.Unmarshal(patch, &delta); err != nil {
		return nil, apperrors.Validation("request body must be a JSON object")
	}

	delete(delta, "id")
	delete(delta, "_id")
	delete(delta, "createdAt")

	for k, v := range delta {
		base[k] = v
	}
	return json.Marshal(base)
}

// storeErr translates store sentinels into the API error taxonomy, keeping
// the entity name in the message so forms can show which record failed.
func storeErr(err error, entity, id string) error {
	if errors.Is(err, db.ErrNotFound) {
		return apperrors.NotFound("%s %s not found", entity, id)
	}
	return fmt.Errorf("there was a problem saving your %s: %w", entity, err)
}

func decodeList[T any](docs []json.RawMessage, entity string) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("decode stored %s: %w", entity, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
