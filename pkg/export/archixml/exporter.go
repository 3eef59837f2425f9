// Package archixml exports diagrams to the Archi tool's XML model
// format. The output opens directly in Archi: elements are filed into
// the standard layer folders, relationships into the Relations folder,
// and a generated overview diagram with computed positions and
// connection routing goes into the Views folder.
package archixml

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/layout"
	"github.com/archigen/archigen/pkg/model"
)

const (
	archimateNamespace = "http://www.archimatetool.com/archimate"
	xsiNamespace       = "http://www.w3.org/2001/XMLSchema-instance"

	modelVersion = "4.9.0"

	objectWidth  = 200
	objectHeight = 60
)

// Options control model-level attributes of the export.
type Options struct {
	// ModelID overrides the generated model identifier.
	ModelID string
	// ViewName overrides the generated overview diagram name. The
	// default is "<model name> - Overview".
	ViewName string
}

// Exporter writes diagrams as Archi XML models.
type Exporter struct {
	layout layout.Config

	// newID generates identifiers for folders, views and connections.
	// Replaced in tests for stable output.
	newID func() string
}

// NewExporter creates an Exporter with the default layout grid.
func NewExporter() *Exporter {
	return &Exporter{
		layout: layout.DefaultConfig(),
		newID:  func() string { return "id-" + uuid.NewString() },
	}
}

// Export serializes the diagram into an Archi XML model document. The
// document is a single line after the XML declaration, matching the
// format Archi itself writes.
func (ex *Exporter) Export(d *model.Diagram, opts Options) ([]byte, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no diagram to export")
	}

	modelID := opts.ModelID
	if modelID == "" {
		modelID = ex.newID()
	}

	doc := xmlModel{
		ArchimateNS: archimateNamespace,
		XSINS:       xsiNamespace,
		Name:        d.Name,
		ID:          modelID,
		Version:     modelVersion,
	}

	doc.Folders = append(doc.Folders, ex.layerFolders(d)...)
	doc.Folders = append(doc.Folders, xmlFolder{Name: "Other", ID: ex.newID(), Type: "other"})
	doc.Folders = append(doc.Folders, ex.relationsFolder(d))
	doc.Folders = append(doc.Folders, ex.viewsFolder(d, opts))

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "XML serialization failed")
	}
	return append([]byte(xml.Header[:len(xml.Header)-1]), body...), nil
}

// layerFolder order and folder types as Archi creates them. Physical
// elements are filed into the technology folder.
var layerFolders = []struct {
	layer model.Layer
	typ   string
}{
	{model.LayerStrategy, "strategy"},
	{model.LayerBusiness, "business"},
	{model.LayerApplication, "application"},
	{model.LayerTechnology, "technology"},
	{model.LayerPhysical, "technology"},
	{model.LayerMotivation, "motivation"},
	{model.LayerImplementation, "implementation_migration"},
}

func (ex *Exporter) layerFolders(d *model.Diagram) []xmlFolder {
	byLayer := make(map[model.Layer][]*model.Element)
	for _, e := range d.Elements() {
		byLayer[e.Layer] = append(byLayer[e.Layer], e)
	}

	folders := make([]xmlFolder, 0, len(layerFolders))
	for _, lf := range layerFolders {
		folder := xmlFolder{Name: string(lf.layer), ID: ex.newID(), Type: lf.typ}
		for _, e := range byLayer[lf.layer] {
			folder.Elements = append(folder.Elements, elementEntry(e))
		}
		folders = append(folders, folder)
	}
	return folders
}

func elementEntry(e *model.Element) xmlEntry {
	entry := xmlEntry{
		Type: "archimate:" + xmlElementType(e.Type),
		ID:   e.ID,
		Name: e.Name,
	}
	if e.Description != "" {
		entry.Properties = append(entry.Properties, xmlProperty{Key: "documentation", Value: e.Description})
	}
	if len(e.Tags) > 0 {
		entry.Properties = append(entry.Properties, xmlProperty{Key: "tags", Value: strings.Join(e.Tags, ",")})
	}
	return entry
}

func (ex *Exporter) relationsFolder(d *model.Diagram) xmlFolder {
	folder := xmlFolder{Name: "Relations", ID: ex.newID(), Type: "relations"}
	for _, r := range d.Relationships() {
		entry := xmlEntry{
			Type:   "archimate:" + xmlRelationshipType(string(r.Type)),
			ID:     r.ID,
			Name:   r.Label,
			Source: r.Source,
			Target: r.Target,
		}
		folder.Elements = append(folder.Elements, entry)
	}
	return folder
}

// viewsFolder builds the Views folder with a single overview diagram.
// Diagrams without elements get an empty folder.
func (ex *Exporter) viewsFolder(d *model.Diagram, opts Options) xmlFolder {
	folder := xmlFolder{Name: "Views", ID: ex.newID(), Type: "diagrams"}

	elements := d.Elements()
	if len(elements) == 0 {
		return folder
	}

	viewName := opts.ViewName
	if viewName == "" {
		viewName = d.Name + " - Overview"
	}
	view := xmlEntry{
		Type:                 "archimate:ArchimateDiagramModel",
		Name:                 viewName,
		ID:                   ex.newID(),
		ConnectionRouterType: "2",
	}

	positions := layout.Positions(d, ex.layout)

	objectIndex := make(map[string]int, len(elements))
	for i, e := range elements {
		objectIndex[e.ID] = i
	}

	connectionIDs, targetConnections := ex.connectionMaps(d, objectIndex)

	for i, e := range elements {
		view.Children = append(view.Children, ex.diagramObject(d, e, i, positions, objectIndex, connectionIDs, targetConnections))
	}

	view.Properties = append(view.Properties, xmlProperty{Key: "viewpoint", Value: "layered"})
	folder.Elements = append(folder.Elements, view)
	return folder
}

// connectionMaps assigns a connection id per relationship and records,
// per target object, the incoming connection ids for the
// targetConnections attribute.
func (ex *Exporter) connectionMaps(d *model.Diagram, objectIndex map[string]int) (map[string]string, map[int][]string) {
	connectionIDs := make(map[string]string)
	targetConnections := make(map[int][]string)

	for _, r := range d.Relationships() {
		id := ex.newID()
		connectionIDs[r.ID] = id

		tgtIdx, ok := objectIndex[r.Target]
		if !ok {
			continue
		}
		if _, ok := objectIndex[r.Source]; !ok {
			continue
		}
		targetConnections[tgtIdx] = append(targetConnections[tgtIdx], id)
	}
	return connectionIDs, targetConnections
}

func (ex *Exporter) diagramObject(d *model.Diagram, e *model.Element, index int, positions map[string]layout.Point, objectIndex map[string]int, connectionIDs map[string]string, targetConnections map[int][]string) xmlDiagramObject {
	obj := xmlDiagramObject{
		Type:              "archimate:DiagramObject",
		ID:                fmt.Sprintf("id-obj-%d", index),
		ArchimateElement:  e.ID,
		TargetConnections: strings.Join(targetConnections[index], " "),
	}

	pos := positions[e.ID]
	obj.Bounds = xmlBounds{X: pos.X, Y: pos.Y, Width: objectWidth, Height: objectHeight}

	for _, r := range d.Relationships() {
		if r.Source != e.ID {
			continue
		}
		tgtIdx, ok := objectIndex[r.Target]
		if !ok {
			continue
		}
		obj.Connections = append(obj.Connections, ex.sourceConnection(r, index, tgtIdx, positions, connectionIDs))
	}
	return obj
}

func (ex *Exporter) sourceConnection(r *model.Relationship, sourceIdx, targetIdx int, positions map[string]layout.Point, connectionIDs map[string]string) xmlConnection {
	conn := xmlConnection{
		Type:                  "archimate:Connection",
		ID:                    connectionIDs[r.ID],
		Source:                fmt.Sprintf("id-obj-%d", sourceIdx),
		Target:                fmt.Sprintf("id-obj-%d", targetIdx),
		ArchimateRelationship: r.ID,
	}

	src, ok := positions[r.Source]
	if !ok {
		return conn
	}
	tgt, ok := positions[r.Target]
	if !ok {
		return conn
	}

	// Bendpoint coordinates are stored relative to both endpoints.
	for _, bp := range layout.Bendpoints(src, tgt, ex.layout) {
		conn.Bendpoints = append(conn.Bendpoints, xmlBendpoint{
			StartX: bp.X - src.X - ex.layout.BendOffsetX,
			StartY: bp.Y - src.Y - ex.layout.BendOffsetY,
			EndX:   bp.X - tgt.X - ex.layout.BendOffsetX,
			EndY:   bp.Y - tgt.Y - ex.layout.BendOffsetY,
		})
	}
	return conn
}

type xmlModel struct {
	XMLName     xml.Name    `xml:"archimate:model"`
	ArchimateNS string      `xml:"xmlns:archimate,attr"`
	XSINS       string      `xml:"xmlns:xsi,attr"`
	Name        string      `xml:"name,attr"`
	ID          string      `xml:"id,attr"`
	Version     string      `xml:"version,attr"`
	Folders     []xmlFolder `xml:"folder"`
}

type xmlFolder struct {
	Name     string     `xml:"name,attr"`
	ID       string     `xml:"id,attr"`
	Type     string     `xml:"type,attr"`
	Elements []xmlEntry `xml:"element"`
}

// xmlEntry is a model-tree element: an ArchiMate element, a
// relationship, or a diagram, distinguished by its xsi:type.
type xmlEntry struct {
	Type                 string             `xml:"xsi:type,attr"`
	ID                   string             `xml:"id,attr"`
	Name                 string             `xml:"name,attr,omitempty"`
	Source               string             `xml:"source,attr,omitempty"`
	Target               string             `xml:"target,attr,omitempty"`
	ConnectionRouterType string             `xml:"connectionRouterType,attr,omitempty"`
	Children             []xmlDiagramObject `xml:"child,omitempty"`
	Properties           []xmlProperty      `xml:"property,omitempty"`
}

type xmlProperty struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

type xmlDiagramObject struct {
	Type              string          `xml:"xsi:type,attr"`
	ID                string          `xml:"id,attr"`
	ArchimateElement  string          `xml:"archimateElement,attr"`
	TargetConnections string          `xml:"targetConnections,attr,omitempty"`
	Bounds            xmlBounds       `xml:"bounds"`
	Connections       []xmlConnection `xml:"sourceConnection,omitempty"`
}

type xmlBounds struct {
	X      int `xml:"x,attr"`
	Y      int `xml:"y,attr"`
	Width  int `xml:"width,attr"`
	Height int `xml:"height,attr"`
}

type xmlConnection struct {
	Type                  string         `xml:"xsi:type,attr"`
	ID                    string         `xml:"id,attr"`
	Source                string         `xml:"source,attr"`
	Target                string         `xml:"target,attr"`
	ArchimateRelationship string         `xml:"archimateRelationship,attr"`
	Bendpoints            []xmlBendpoint `xml:"bendpoint,omitempty"`
}

type xmlBendpoint struct {
	StartX int `xml:"startX,attr"`
	StartY int `xml:"startY,attr"`
	EndX   int `xml:"endX,attr"`
	EndY   int `xml:"endY,attr"`
}
