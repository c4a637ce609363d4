package filter

import (
	"encoding/json"
	"fmt"
)

// ToRecords converts typed API models into Records through their JSON
// encoding, so expressions use the same field names as the API.
func ToRecords[T any](items []T) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to encode item %d: %w", i, err)
		}

		var record Record
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("item %d is not a JSON object: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}
