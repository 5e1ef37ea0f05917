package airtable

import (
	"context"
	"net/url"
)

// Car is the normalized wire shape the fleet page consumes. Price and Count
// stay pointers so a field the operator left blank in the record store goes
// out as null instead of a fabricated zero.
type Car struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	ImageURL *string  `json:"imageUrl"`
	Price    *float64 `json:"price"`
	Features string   `json:"features"`
	Count    *float64 `json:"count"`
	Colors   string   `json:"colors"`
	Bookings []string `json:"bookings"`
}

// ListCars reads every record of the Cars table (Grid view), following
// offset pagination, and normalizes each row.
func (c *Client) ListCars(ctx context.Context) ([]Car, error) {
	cars := make([]Car, 0)
	offset := ""

	for {
		params := url.Values{}
		params.Set("view", "Grid view")
		if offset != "" {
			params.Set("offset", offset)
		}

		var page struct {
			Records []Record `json:"records"`
			Offset  string   `json:"offset"`
		}
		if err := c.do(ctx, "GET", c.tableURL(carsTable)+"?"+params.Encode(), nil, &page); err != nil {
			return nil, err
		}

		for _, rec := range page.Records {
			cars = append(cars, CarFromRecord(rec))
		}

		if page.Offset == "" {
			return cars, nil
		}
		offset = page.Offset
	}
}

// CarFromRecord maps one raw record onto the Car wire shape. The Image
// field may be an attachment list or a plain URL string depending on how
// the operator set the column up; both are accepted.
func CarFromRecord(rec Record) Car {
	car := Car{
		ID:       rec.ID,
		Name:     stringField(rec.Fields, "Name"),
		Category: stringField(rec.Fields, "Category"),
		Features: stringField(rec.Fields, "Features"),
		Colors:   stringField(rec.Fields, "Colors"),
		Price:    numberField(rec.Fields, "Price"),
		Count:    numberField(rec.Fields, "Count"),
		Bookings: make([]string, 0),
	}

	switch img := rec.Fields["Image"].(type) {
	case []interface{}:
		if len(img) > 0 {
			if attachment, ok := img[0].(map[string]interface{}); ok {
				if u, ok := attachment["url"].(string); ok {
					car.ImageURL = &u
				}
			}
		}
	case string:
		car.ImageURL = &img
	}

	if linked, ok := rec.Fields["Bookings"].([]interface{}); ok {
		for _, id := range linked {
			if s, ok := id.(string); ok {
				car.Bookings = append(car.Bookings, s)
			}
		}
	}

	return car
}

func stringField(fields map[string]interface{}, key string) string {
	s, _ := fields[key].(string)
	return s
}

func numberField(fields map[string]interface{}, key string) *float64 {
	if n, ok := fields[key].(float64); ok {
		return &n
	}
	return nil
}
