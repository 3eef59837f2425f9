package archixml

// elementTypeTable maps internal element type names to the type names
// used by the Archi XML schema. ArchiMate 3.2 types are written with
// the 3.0 schema names for backward compatibility.
var elementTypeTable = map[string]string{
	// Business
	"Business_Actor":          "BusinessActor",
	"Business_Role":           "BusinessRole",
	"Business_Collaboration":  "BusinessCollaboration",
	"Business_Interface":      "BusinessInterface",
	"Business_Function":       "BusinessFunction",
	"Business_Process":        "BusinessProcess",
	"Business_Event":          "BusinessEvent",
	"Business_Service":        "BusinessService",
	"Business_Object":         "BusinessObject",
	"Business_Contract":       "Contract",
	"Business_Representation": "Representation",
	"Location":                "Location",

	// Application
	"Application_Component":     "ApplicationComponent",
	"Application_Collaboration": "ApplicationCollaboration",
	"Application_Interface":     "ApplicationInterface",
	"Application_Function":      "ApplicationFunction",
	"Application_Interaction":   "ApplicationInteraction",
	"Application_Process":       "ApplicationProcess",
	"Application_Event":         "ApplicationEvent",
	"Application_Service":       "ApplicationService",
	"Data_Object":               "DataObject",

	// Technology
	"Node":                     "Node",
	"Device":                   "Device",
	"System_Software":          "SystemSoftware",
	"Technology_Collaboration": "TechnologyCollaboration",
	"Technology_Interface":     "TechnologyInterface",
	"Path":                     "Path",
	"Communication_Network":    "CommunicationNetwork",
	"Technology_Function":      "TechnologyFunction",
	"Technology_Process":       "TechnologyProcess",
	"Technology_Interaction":   "TechnologyInteraction",
	"Technology_Event":         "TechnologyEvent",
	"Technology_Service":       "TechnologyService",
	"Artifact":                 "Artifact",

	// Physical
	"Equipment":            "Equipment",
	"Facility":             "Facility",
	"Distribution_Network": "DistributionNetwork",
	"Material":             "Material",

	// Motivation
	"Stakeholder": "Stakeholder",
	"Driver":      "Driver",
	"Assessment":  "Assessment",
	"Goal":        "Goal",
	"Outcome":     "Outcome",
	"Principle":   "Principle",
	"Requirement": "Requirement",
	"Constraint":  "Constraint",
	"Meaning":     "Meaning",
	"Value":       "Value",

	// Strategy
	"Resource":         "Resource",
	"Capability":       "Capability",
	"Course_of_Action": "CourseOfAction",
	"Value_Stream":     "ValueStream",

	// Implementation
	"Work_Package":         "WorkPackage",
	"Deliverable":          "Deliverable",
	"Implementation_Event": "ImplementationEvent",
	"Plateau":              "Plateau",
	"Gap":                  "Gap",
}

// xmlElementType converts an internal element type into the schema
// type. Unknown types pass through unchanged.
func xmlElementType(elementType string) string {
	if t, ok := elementTypeTable[elementType]; ok {
		return t
	}
	return elementType
}

// xmlRelationshipType converts an internal relationship type into the
// schema type, which is the type name with a Relationship suffix.
func xmlRelationshipType(relType string) string {
	return relType + "Relationship"
}
