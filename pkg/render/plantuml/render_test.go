package plantuml

import (
	"strings"
	"testing"

	"github.com/archigen/archigen/pkg/model"
)

func buildDiagram(t *testing.T) *model.Diagram {
	t.Helper()
	d := model.New("Order Processing")
	d.Description = "Order intake and fulfillment"
	elements := []*model.Element{
		{ID: "customer", Name: "Customer", Type: "Business_Actor", Layer: model.LayerBusiness},
		{ID: "orders", Name: "Order Service", Type: "Application_Service", Layer: model.LayerApplication},
		{ID: "db", Name: "Order DB", Type: "Node", Layer: model.LayerTechnology},
	}
	for _, e := range elements {
		if err := d.AddElement(e); err != nil {
			t.Fatalf("AddElement(%s) failed: %v", e.ID, err)
		}
	}
	if err := d.AddRelationship(&model.Relationship{
		ID: "r1", Source: "customer", Target: "orders", Type: model.RelServing,
	}); err != nil {
		t.Fatalf("AddRelationship failed: %v", err)
	}
	return d
}

func render(t *testing.T, d *model.Diagram, opts Options) string {
	t.Helper()
	out, err := NewRenderer(nil).Render(d, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return out
}

func TestRenderDocumentSkeleton(t *testing.T) {
	out := render(t, buildDiagram(t), DefaultOptions())

	lines := strings.Split(out, "\n")
	if lines[0] != "@startuml" {
		t.Errorf("first line = %q, want @startuml", lines[0])
	}
	if lines[len(lines)-1] != "@enduml" {
		t.Errorf("last line = %q, want @enduml", lines[len(lines)-1])
	}
	for _, want := range []string{
		"!pragma charset UTF-8",
		"!include <archimate/Archimate>",
		"title Order Processing",
		"' Description: Order intake and fulfillment",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderEmptyDiagram(t *testing.T) {
	d := model.New("Empty")
	if _, err := NewRenderer(nil).Render(d, DefaultOptions()); err == nil {
		t.Error("expected error for diagram without elements")
	}
}

func TestRenderFlatElements(t *testing.T) {
	opts := DefaultOptions()
	opts.GroupByLayer = false
	out := render(t, buildDiagram(t), opts)

	if !strings.Contains(out, "' Elements") {
		t.Error("flat mode should carry the elements header comment")
	}
	if strings.Contains(out, "package \"") {
		t.Error("flat mode must not emit layer packages")
	}
	if !strings.Contains(out, `Business_Actor(customer, "Customer")`) {
		t.Error("missing business actor macro line")
	}
}

func TestRenderGroupedByLayer(t *testing.T) {
	opts := DefaultOptions()
	opts.GroupByLayer = true
	out := render(t, buildDiagram(t), opts)

	for _, want := range []string{
		`package "Business Layer" {`,
		`package "Application Layer" {`,
		`package "Technology Layer" {`,
		`  Application_Service(orders, "Order Service")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Layer packages follow the architectural ordering, not insertion
	// or alphabetic order.
	biz := strings.Index(out, `package "Business Layer"`)
	app := strings.Index(out, `package "Application Layer"`)
	tech := strings.Index(out, `package "Technology Layer"`)
	if !(biz < app && app < tech) {
		t.Errorf("layer packages out of order: business=%d application=%d technology=%d", biz, app, tech)
	}
}

func TestRenderSingleLayerComment(t *testing.T) {
	d := model.New("Apps")
	for _, e := range []*model.Element{
		{ID: "a", Name: "A", Type: "Application_Component", Layer: model.LayerApplication},
		{ID: "b", Name: "B", Type: "Application_Service", Layer: model.LayerApplication},
	} {
		if err := d.AddElement(e); err != nil {
			t.Fatal(err)
		}
	}
	opts := DefaultOptions()
	opts.GroupByLayer = true
	out := render(t, d, opts)

	if !strings.Contains(out, "' Application Layer") {
		t.Error("single-layer grouping should use a comment header")
	}
	if strings.Contains(out, `package "Application Layer"`) {
		t.Error("single-layer grouping must not open a package")
	}
}

func TestRenderHierarchical(t *testing.T) {
	d := model.New("Hier")
	for _, e := range []*model.Element{
		{ID: "actor", Name: "Actor", Type: "Business_Actor", Layer: model.LayerBusiness},
		{ID: "proc", Name: "Process", Type: "Business_Process", Layer: model.LayerBusiness},
		{ID: "obj", Name: "Object", Type: "Business_Object", Layer: model.LayerBusiness},
	} {
		if err := d.AddElement(e); err != nil {
			t.Fatal(err)
		}
	}
	opts := DefaultOptions()
	opts.Hierarchical = true
	opts.GroupByAspect = true
	out := render(t, d, opts)

	for _, want := range []string{
		`package "Business Layer" {`,
		`  package "Active Structure" {`,
		`  package "Behavior" {`,
		`  package "Passive Structure" {`,
		`    Business_Process(proc, "Process")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderHiddenAndRemoved(t *testing.T) {
	d := buildDiagram(t)
	d.Visibility().HideElements("db")
	d.Visibility().RemoveElements("customer")
	out := render(t, d, DefaultOptions())

	if strings.Contains(out, `"Customer"`) {
		t.Error("removed element must not be emitted")
	}
	if !strings.Contains(out, "hide db") {
		t.Error("hidden element should get a hide directive")
	}
	if !strings.Contains(out, `"Order DB"`) {
		t.Error("hidden element itself is still emitted")
	}
	if strings.Contains(out, `"customer" --> "orders"`) {
		t.Error("relationship with a removed endpoint must be dropped")
	}
}

func TestRenderRelationshipLabels(t *testing.T) {
	d := buildDiagram(t)

	opts := DefaultOptions()
	opts.ShowRelationshipLabels = true
	out := render(t, d, opts)
	if !strings.Contains(out, `"customer" --> "orders" : serves`) {
		t.Error("missing translated fallback label")
	}

	opts.ShowRelationshipLabels = false
	out = render(t, d, opts)
	if strings.Contains(out, ": serves") {
		t.Error("labels disabled but label emitted")
	}
	if !strings.Contains(out, `"customer" --> "orders"`) {
		t.Error("relationship line missing")
	}
}

func TestRenderLegend(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowLegend = true
	out := render(t, buildDiagram(t), opts)

	idx := strings.Index(out, "legend right")
	if idx < 0 {
		t.Fatal("legend block missing")
	}
	block := out[idx:strings.Index(out, "end legend")]
	biz := strings.Index(block, "Business Layer")
	app := strings.Index(block, "Application Layer")
	tech := strings.Index(block, "Technology Layer")
	if biz < 0 || app < 0 || tech < 0 {
		t.Fatalf("legend entries missing in %q", block)
	}
	if !(biz < app && app < tech) {
		t.Error("legend entries not in architectural order")
	}
}

func TestRenderDataBlocks(t *testing.T) {
	opts := DefaultOptions()
	opts.DataBlocks = []DataBlock{{Name: "Payload", JSON: "{\n  \"id\": 1\n}"}}
	out := render(t, buildDiagram(t), opts)

	if !strings.Contains(out, "allowmixing") {
		t.Error("data blocks require allowmixing")
	}
	if !strings.Contains(out, `json "Payload" {`) {
		t.Error("json block header missing")
	}
	if !strings.Contains(out, `  "id": 1`) {
		t.Error("json body missing")
	}
}

func TestRenderSprites(t *testing.T) {
	d := buildDiagram(t)
	sprite := &model.Sprite{Name: "cloud", Definition: "[16x16/16] { ... }"}
	for _, id := range []string{"customer", "orders"} {
		e, _ := d.Element(id)
		e.Sprite = sprite
	}
	out := render(t, d, DefaultOptions())

	if n := strings.Count(out, "sprite $cloud "); n != 1 {
		t.Errorf("sprite definition emitted %d times, want 1", n)
	}
}

func TestRenderDirectionAndLayoutPragmas(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		want    string
		exclude string
	}{
		{
			name:   "horizontal",
			mutate: func(o *Options) { o.Direction = DirectionHorizontal },
			want:   "left to right direction",
		},
		{
			name:   "vertical",
			mutate: func(o *Options) { o.Direction = DirectionVertical },
			want:   "top to bottom direction",
		},
		{
			name:    "layered has no directive",
			mutate:  func(o *Options) { o.Direction = DirectionLayered },
			exclude: "direction\n",
		},
		{
			name:   "smetana engine",
			mutate: func(o *Options) { o.LayoutEngine = "smetana" },
			want:   "!pragma layout smetana",
		},
		{
			name:   "concentrate",
			mutate: func(o *Options) { o.Concentrate = true },
			want:   "skinparam concentrate true",
		},
		{
			name:   "custom nodesep",
			mutate: func(o *Options) { o.NodeSep = 0.5 },
			want:   "skinparam nodesep 0.5",
		},
		{
			name:    "default ranksep omitted",
			mutate:  func(o *Options) { o.RankSep = 0.5 },
			exclude: "skinparam ranksep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.EnableStyling = false // spacing presets also emit nodesep/ranksep
			tt.mutate(&opts)
			out := render(t, buildDiagram(t), opts)
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q", tt.want)
			}
			if tt.exclude != "" && strings.Contains(out, tt.exclude) {
				t.Errorf("output should not contain %q", tt.exclude)
			}
		})
	}
}

func TestRenderStyling(t *testing.T) {
	opts := DefaultOptions()
	opts.EnableStyling = true
	opts.Theme = ThemeDark
	out := render(t, buildDiagram(t), opts)

	if !strings.Contains(out, "skinparam backgroundColor #2D3748") {
		t.Error("dark theme background missing")
	}
	if !strings.Contains(out, "skinparam componentStyle") {
		t.Error("component style directive missing")
	}
}

func TestRenderInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Theme = "neon"
	opts.EnableStyling = true
	if _, err := NewRenderer(nil).Render(buildDiagram(t), opts); err == nil {
		t.Error("expected error for unknown theme")
	}
}
