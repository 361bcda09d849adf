package catalog

import "testing"

func TestCatalogShape(t *testing.T) {
	if len(Locations) != 13 {
		t.Fatalf("len(Locations) = %d, want 13", len(Locations))
	}
	if len(Items) != 11 {
		t.Fatalf("len(Items) = %d, want 11", len(Items))
	}

	seen := make(map[string]bool)
	bulkCount := 0
	for _, item := range Items {
		if item.Key == "" || item.Name == "" {
			t.Fatalf("item %+v has empty key or name", item)
		}
		if seen[item.Key] {
			t.Fatalf("duplicate menu key %q", item.Key)
		}
		seen[item.Key] = true
		if item.Price <= 0 {
			t.Fatalf("item %q has non-positive price %d", item.Key, item.Price)
		}
		if item.Bulk != nil {
			bulkCount++
		}
	}
	if bulkCount != 1 {
		t.Fatalf("expected exactly one item with a bulk rule, got %d", bulkCount)
	}
}

func TestBulkRuleOnKalamare(t *testing.T) {
	item, ok := Find("kalamare")
	if !ok {
		t.Fatalf("kalamare not found")
	}
	if item.Price != 40 {
		t.Fatalf("kalamare price = %d, want 40", item.Price)
	}
	if item.Bulk == nil {
		t.Fatalf("kalamare must carry a bulk rule")
	}
	if item.Bulk.GroupSize != 3 || item.Bulk.GroupPrice != 110 {
		t.Fatalf("kalamare bulk rule = %+v, want 3 for 110", item.Bulk)
	}
	if item.Note == "" {
		t.Fatalf("kalamare must carry the bundle note")
	}
}

func TestFind(t *testing.T) {
	item, ok := Find("nam_plara")
	if !ok {
		t.Fatalf("nam_plara not found")
	}
	if item.Name != "ขนมจีนน้ำปลาร้า" || item.Price != 50 {
		t.Fatalf("unexpected item: %+v", item)
	}

	if _, ok := Find("mystery"); ok {
		t.Fatalf("Find must not match unknown keys")
	}
}

func TestIsLocation(t *testing.T) {
	if !IsLocation("บัวขาว") {
		t.Fatalf("บัวขาว must be a known location")
	}
	if IsLocation("กรุงเทพ") {
		t.Fatalf("กรุงเทพ must not be a known location")
	}
	if IsLocation("") {
		t.Fatalf("empty string must not be a known location")
	}
}
