package models

import (
	"encoding/json"
	"time"
)

// CustomChart is a chart definition embedded in the client's custom_charts
// sequence. The dashboard sends an arbitrary configuration object; only the
// id and the two timestamps are meaningful to the backend, everything else is
// kept opaque in Config and flattened back into the stored JSON object.
type CustomChart struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Config    map[string]interface{}
}

func (c CustomChart) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Config)+3)
	for k, v := range c.Config {
		out[k] = v
	}
	out["id"] = c.ID
	out["createdAt"] = c.CreatedAt.UTC().Format(time.RFC3339)
	out["updatedAt"] = c.UpdatedAt.UTC().Format(time.RFC3339)
	return json.Marshal(out)
}

func (c *CustomChart) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if id, ok := raw["id"].(string); ok {
		c.ID = id
	}
	if ts, ok := raw["createdAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			c.CreatedAt = t
		}
	}
	if ts, ok := raw["updatedAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			c.UpdatedAt = t
		}
	}

	delete(raw, "id")
	delete(raw, "createdAt")
	delete(raw, "updatedAt")
	c.Config = raw
	return nil
}
