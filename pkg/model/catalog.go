package model

// ElementTypeInfo describes a canonical element type: the layer it
// belongs to and the aspect it defaults to when the caller does not
// supply one.
type ElementTypeInfo struct {
	Layer  Layer
	Aspect Aspect
}

// elementCatalog is the canonical element-type table. Keys use the
// underscore-separated form accepted on input; renderers and exporters
// map them onto their own naming schemes separately.
var elementCatalog = map[string]ElementTypeInfo{
	// Business layer
	"Business_Actor":          {LayerBusiness, AspectActiveStructure},
	"Business_Role":           {LayerBusiness, AspectActiveStructure},
	"Business_Collaboration":  {LayerBusiness, AspectActiveStructure},
	"Business_Interface":      {LayerBusiness, AspectActiveStructure},
	"Business_Process":        {LayerBusiness, AspectBehavior},
	"Business_Function":       {LayerBusiness, AspectBehavior},
	"Business_Interaction":    {LayerBusiness, AspectBehavior},
	"Business_Event":          {LayerBusiness, AspectBehavior},
	"Business_Service":        {LayerBusiness, AspectBehavior},
	"Business_Object":         {LayerBusiness, AspectPassiveStructure},
	"Business_Contract":       {LayerBusiness, AspectPassiveStructure},
	"Business_Representation": {LayerBusiness, AspectPassiveStructure},
	"Product":                 {LayerBusiness, AspectPassiveStructure},
	"Location":                {LayerBusiness, AspectActiveStructure},

	// Application layer
	"Application_Component":     {LayerApplication, AspectActiveStructure},
	"Application_Collaboration": {LayerApplication, AspectActiveStructure},
	"Application_Interface":     {LayerApplication, AspectActiveStructure},
	"Application_Function":      {LayerApplication, AspectBehavior},
	"Application_Interaction":   {LayerApplication, AspectBehavior},
	"Application_Process":       {LayerApplication, AspectBehavior},
	"Application_Event":         {LayerApplication, AspectBehavior},
	"Application_Service":       {LayerApplication, AspectBehavior},
	"Data_Object":               {LayerApplication, AspectPassiveStructure},

	// Technology layer
	"Node":                     {LayerTechnology, AspectActiveStructure},
	"Device":                   {LayerTechnology, AspectActiveStructure},
	"System_Software":          {LayerTechnology, AspectActiveStructure},
	"Technology_Collaboration": {LayerTechnology, AspectActiveStructure},
	"Technology_Interface":     {LayerTechnology, AspectActiveStructure},
	"Path":                     {LayerTechnology, AspectActiveStructure},
	"Communication_Network":    {LayerTechnology, AspectActiveStructure},
	"Technology_Function":      {LayerTechnology, AspectBehavior},
	"Technology_Process":       {LayerTechnology, AspectBehavior},
	"Technology_Interaction":   {LayerTechnology, AspectBehavior},
	"Technology_Event":         {LayerTechnology, AspectBehavior},
	"Technology_Service":       {LayerTechnology, AspectBehavior},
	"Artifact":                 {LayerTechnology, AspectPassiveStructure},

	// Physical layer
	"Equipment":            {LayerPhysical, AspectActiveStructure},
	"Facility":             {LayerPhysical, AspectActiveStructure},
	"Distribution_Network": {LayerPhysical, AspectActiveStructure},
	"Material":             {LayerPhysical, AspectPassiveStructure},

	// Motivation layer
	"Stakeholder": {LayerMotivation, AspectActiveStructure},
	"Driver":      {LayerMotivation, AspectActiveStructure},
	"Assessment":  {LayerMotivation, AspectActiveStructure},
	"Goal":        {LayerMotivation, AspectActiveStructure},
	"Outcome":     {LayerMotivation, AspectActiveStructure},
	"Principle":   {LayerMotivation, AspectActiveStructure},
	"Requirement": {LayerMotivation, AspectActiveStructure},
	"Constraint":  {LayerMotivation, AspectActiveStructure},
	"Meaning":     {LayerMotivation, AspectPassiveStructure},
	"Value":       {LayerMotivation, AspectPassiveStructure},

	// Strategy layer
	"Resource":         {LayerStrategy, AspectPassiveStructure},
	"Capability":       {LayerStrategy, AspectBehavior},
	"Course_of_Action": {LayerStrategy, AspectBehavior},
	"Value_Stream":     {LayerStrategy, AspectBehavior},

	// Implementation layer
	"Work_Package":         {LayerImplementation, AspectBehavior},
	"Deliverable":          {LayerImplementation, AspectPassiveStructure},
	"Implementation_Event": {LayerImplementation, AspectBehavior},
	"Plateau":              {LayerImplementation, AspectPassiveStructure},
	"Gap":                  {LayerImplementation, AspectPassiveStructure},
}

// KnownElementType reports whether t is in the canonical type catalog.
// Unknown types are accepted by the model (they surface as validation
// warnings, not errors) so diagrams can carry vendor extensions.
func KnownElementType(t string) bool {
	_, ok := elementCatalog[t]
	return ok
}

// ElementTypeLayer returns the catalog layer for a canonical type.
// The second return is false for unknown types.
func ElementTypeLayer(t string) (Layer, bool) {
	info, ok := elementCatalog[t]
	return info.Layer, ok
}

// DefaultAspect returns the catalog aspect for a canonical type, falling
// back to Active Structure for unknown types.
func DefaultAspect(t string) Aspect {
	if info, ok := elementCatalog[t]; ok {
		return info.Aspect
	}
	return AspectActiveStructure
}

// ElementTypes returns all canonical element type names. Order is
// unspecified; callers needing determinism must sort.
func ElementTypes() []string {
	types := make([]string, 0, len(elementCatalog))
	for t := range elementCatalog {
		types = append(types, t)
	}
	return types
}
