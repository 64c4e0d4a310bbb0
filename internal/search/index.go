package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/Skotchmaster/workshop/internal/models"
)

// ESIndex keeps product documents in one Elasticsearch index.
type ESIndex struct {
	Client *elasticsearch.Client
	Index  string
}

type productDoc struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImgURL      string `json:"img_url"`
	CategoryIDs []uint `json:"category_ids"`
}

func docFor(p *models.Product) productDoc {
	ids := make([]uint, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		ImgURL:      p.ImgURL,
		CategoryIDs: ids,
	}
}

func (x *ESIndex) IndexProduct(ctx context.Context, p *models.Product) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(docFor(p)); err != nil {
		return fmt.Errorf("elasticsearch: encode product: %w", err)
	}

	res, err := x.Client.Index(x.Index, &buf,
		x.Client.Index.WithContext(ctx),
		x.Client.Index.WithDocumentID(strconv.FormatUint(uint64(p.ID), 10)),
		x.Client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: index product %d: %w", p.ID, err)
	}
	return checkResponse(res, "index product")
}

func (x *ESIndex) DeleteProduct(ctx context.Context, id uint) error {
	res, err := x.Client.Delete(x.Index, strconv.FormatUint(uint64(id), 10),
		x.Client.Delete.WithContext(ctx),
		x.Client.Delete.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch: delete product %d: %w", id, err)
	}
	if res.StatusCode == http.StatusNotFound {
		res.Body.Close()
		return nil
	}
	return checkResponse(res, "delete product")
}

// Search runs a fuzzy match over name and description and returns the total
// hit count and the product ids of the requested page in relevance order.
func (x *ESIndex) Search(ctx context.Context, q string, from, size int) (int64, []uint, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from":    from,
		"size":    size,
		"_source": []string{"id"},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: encode query: %w", err)
	}

	res, err := x.Client.Search(
		x.Client.Search.WithContext(ctx),
		x.Client.Search.WithIndex(x.Index),
		x.Client.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return 0, nil, fmt.Errorf("elasticsearch: search: %s: %s", res.Status(), raw)
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("elasticsearch: decode search: %w", err)
	}

	ids := make([]uint, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		n, err := strconv.ParseUint(h.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(n))
	}
	return r.Hits.Total.Value, ids, nil
}

func checkResponse(res *esapi.Response, op string) error {
	defer res.Body.Close()
	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return fmt.Errorf("elasticsearch: %s: %s: %s", op, res.Status(), raw)
	}
	return nil
}
