package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeViewResponse(t *testing.T, resp *httptest.ResponseRecorder) productsViewResponse {
	t.Helper()
	var envelope struct {
		Data productsViewResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestProductsListStartsUnfiltered(t *testing.T) {
	env := newTestEnv(t, false)
	handler := ProductsList(nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, env.request(http.MethodGet, "/api/v1/products", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	data := decodeViewResponse(t, resp)
	if data.SelectedCategory != "All" {
		t.Fatalf("expected category All got %q", data.SelectedCategory)
	}
	if len(data.Products) != 8 {
		t.Fatalf("expected 8 products got %d", len(data.Products))
	}
}

func TestProductsSearchIntersectsWithCategory(t *testing.T) {
	env := newTestEnv(t, false)

	setCategory := ProductsSetCategory(env.metrics, nil)
	resp := httptest.NewRecorder()
	setCategory.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/products/category", `{"category":"Feeding"}`))
	if data := decodeViewResponse(t, resp); len(data.Products) != 2 {
		t.Fatalf("expected 2 feeding products got %d", len(data.Products))
	}

	search := ProductsSearch(env.metrics, nil)
	resp = httptest.NewRecorder()
	search.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/products/search", `{"query":"wall"}`))

	data := decodeViewResponse(t, resp)
	if len(data.Products) != 1 || data.Products[0].ID != "4" {
		t.Fatalf("expected the wall feeder only, got %d products", len(data.Products))
	}
	if data.SelectedCategory != "Feeding" || data.SearchQuery != "wall" {
		t.Fatalf("unexpected filters %q / %q", data.SelectedCategory, data.SearchQuery)
	}
}

func TestProductsSetCategoryDropsSearch(t *testing.T) {
	env := newTestEnv(t, false)

	search := ProductsSearch(env.metrics, nil)
	resp := httptest.NewRecorder()
	search.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/products/search", `{"query":"wall"}`))

	setCategory := ProductsSetCategory(env.metrics, nil)
	resp = httptest.NewRecorder()
	setCategory.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/products/category", `{"category":"Feeding"}`))

	if data := decodeViewResponse(t, resp); len(data.Products) != 2 {
		t.Fatalf("expected category to replace the searched view, got %d products", len(data.Products))
	}
}

func TestProductsSortInvalidKey(t *testing.T) {
	env := newTestEnv(t, false)
	handler := ProductsSort(env.metrics, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/products/sort", `{"key":"alphabetical"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductsSortPriceAscending(t *testing.T) {
	env := newTestEnv(t, false)
	handler := ProductsSort(env.metrics, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/products/sort", `{"key":"price-asc"}`))

	data := decodeViewResponse(t, resp)
	for i := 1; i < len(data.Products); i++ {
		if data.Products[i].Price.LessThan(data.Products[i-1].Price) {
			t.Fatal("expected prices ascending")
		}
	}
}

func TestProductsPetTypeInvalid(t *testing.T) {
	env := newTestEnv(t, false)
	handler := ProductsPetType(env.metrics, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/products/pet-type", `{"pet_type":"bird"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductsClearFilters(t *testing.T) {
	env := newTestEnv(t, false)

	setCategory := ProductsSetCategory(env.metrics, nil)
	resp := httptest.NewRecorder()
	setCategory.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/products/category", `{"category":"Feeding"}`))

	clearFilters := ProductsClearFilters(env.metrics, nil)
	resp = httptest.NewRecorder()
	clearFilters.ServeHTTP(resp, env.request(http.MethodDelete, "/api/v1/products/filters", ""))

	data := decodeViewResponse(t, resp)
	if data.SelectedCategory != "All" || data.SearchQuery != "" || len(data.Products) != 8 {
		t.Fatal("expected filters reset to the full view")
	}
}

func TestProductGet(t *testing.T) {
	env := newTestEnv(t, false)
	handler := ProductGet(env.source, nil)

	req := env.request(http.MethodGet, "/api/v1/products/3", "")
	req = withURLParam(req, "productId", "3")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	req = env.request(http.MethodGet, "/api/v1/products/999", "")
	req = withURLParam(req, "productId", "999")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestProductsFeaturedAndTrending(t *testing.T) {
	env := newTestEnv(t, false)

	resp := httptest.NewRecorder()
	ProductsFeatured(env.source).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/products/featured", nil))
	var featured struct {
		Data []struct {
			IsFeatured bool `json:"is_featured"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&featured); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(featured.Data) != 3 {
		t.Fatalf("expected 3 featured products got %d", len(featured.Data))
	}

	resp = httptest.NewRecorder()
	ProductsTrending(env.source).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/products/trending", nil))
	var trending struct {
		Data []struct {
			IsTrending bool `json:"is_trending"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&trending); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(trending.Data) != 3 {
		t.Fatalf("expected 3 trending products got %d", len(trending.Data))
	}
}
