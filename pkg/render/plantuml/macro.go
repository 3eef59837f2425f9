package plantuml

import "github.com/archigen/archigen/pkg/model"

// macroTable maps canonical element types onto the macro names of the
// PlantUML ArchiMate include. CamelCase schema aliases are accepted
// alongside the underscore forms so exchange-format names round-trip.
var macroTable = map[string]string{
	// Business layer
	"Business_Actor":          "Business_Actor",
	"BusinessActor":           "Business_Actor",
	"Business_Role":           "Business_Role",
	"BusinessRole":            "Business_Role",
	"Business_Collaboration":  "Business_Collaboration",
	"BusinessCollaboration":   "Business_Collaboration",
	"Business_Interface":      "Business_Interface",
	"BusinessInterface":       "Business_Interface",
	"Business_Function":       "Business_Function",
	"BusinessFunction":        "Business_Function",
	"Business_Process":        "Business_Process",
	"BusinessProcess":         "Business_Process",
	"Business_Event":          "Business_Event",
	"BusinessEvent":           "Business_Event",
	"Business_Service":        "Business_Service",
	"BusinessService":         "Business_Service",
	"Business_Object":         "Business_Object",
	"BusinessObject":          "Business_Object",
	"Business_Contract":       "Business_Contract",
	"Contract":                "Business_Contract",
	"Business_Representation": "Business_Representation",
	"Representation":          "Business_Representation",
	"Location":                "Business_Location",

	// Application layer
	"Application_Component":     "Application_Component",
	"ApplicationComponent":      "Application_Component",
	"Application_Collaboration": "Application_Collaboration",
	"ApplicationCollaboration":  "Application_Collaboration",
	"Application_Interface":     "Application_Interface",
	"ApplicationInterface":      "Application_Interface",
	"Application_Function":      "Application_Function",
	"ApplicationFunction":       "Application_Function",
	"Application_Interaction":   "Application_Interaction",
	"ApplicationInteraction":    "Application_Interaction",
	"Application_Process":       "Application_Process",
	"ApplicationProcess":        "Application_Process",
	"Application_Event":         "Application_Event",
	"ApplicationEvent":          "Application_Event",
	"Application_Service":       "Application_Service",
	"ApplicationService":        "Application_Service",
	"Data_Object":               "Application_DataObject",
	"DataObject":                "Application_DataObject",
	"Application_DataObject":    "Application_DataObject",

	// Technology layer
	"Node":                             "Technology_Node",
	"Technology_Node":                  "Technology_Node",
	"Device":                           "Technology_Device",
	"Technology_Device":                "Technology_Device",
	"System_Software":                  "Technology_SystemSoftware",
	"SystemSoftware":                   "Technology_SystemSoftware",
	"Technology_SystemSoftware":        "Technology_SystemSoftware",
	"Technology_Collaboration":         "Technology_Collaboration",
	"TechnologyCollaboration":          "Technology_Collaboration",
	"Technology_Interface":             "Technology_Interface",
	"TechnologyInterface":              "Technology_Interface",
	"Path":                             "Technology_Path",
	"Technology_Path":                  "Technology_Path",
	"Communication_Network":            "Technology_CommunicationNetwork",
	"CommunicationNetwork":             "Technology_CommunicationNetwork",
	"Technology_CommunicationNetwork":  "Technology_CommunicationNetwork",
	"Technology_Function":              "Technology_Function",
	"TechnologyFunction":               "Technology_Function",
	"Technology_Process":               "Technology_Process",
	"TechnologyProcess":                "Technology_Process",
	"Technology_Interaction":           "Technology_Interaction",
	"TechnologyInteraction":            "Technology_Interaction",
	"Technology_Event":                 "Technology_Event",
	"TechnologyEvent":                  "Technology_Event",
	"Technology_Service":               "Technology_Service",
	"TechnologyService":                "Technology_Service",
	"Artifact":                         "Technology_Artifact",
	"Technology_Artifact":              "Technology_Artifact",

	// Physical layer
	"Equipment":            "Physical_Equipment",
	"Facility":             "Physical_Facility",
	"Distribution_Network": "Physical_DistributionNetwork",
	"DistributionNetwork":  "Physical_DistributionNetwork",
	"Material":             "Physical_Material",

	// Motivation layer
	"Stakeholder": "Motivation_Stakeholder",
	"Driver":      "Motivation_Driver",
	"Assessment":  "Motivation_Assessment",
	"Goal":        "Motivation_Goal",
	"Outcome":     "Motivation_Outcome",
	"Principle":   "Motivation_Principle",
	"Requirement": "Motivation_Requirement",
	"Constraint":  "Motivation_Constraint",
	"Meaning":     "Motivation_Meaning",
	"Value":       "Motivation_Value",

	// Strategy layer
	"Resource":                "Strategy_Resource",
	"Strategy_Resource":       "Strategy_Resource",
	"Capability":              "Strategy_Capability",
	"Strategy_Capability":     "Strategy_Capability",
	"Course_of_Action":        "Strategy_CourseOfAction",
	"CourseOfAction":          "Strategy_CourseOfAction",
	"Strategy_CourseOfAction": "Strategy_CourseOfAction",
	"Value_Stream":            "Strategy_ValueStream",
	"ValueStream":             "Strategy_ValueStream",
	"Strategy_ValueStream":    "Strategy_ValueStream",

	// Implementation layer
	"Work_Package":               "Implementation_WorkPackage",
	"WorkPackage":                "Implementation_WorkPackage",
	"Implementation_WorkPackage": "Implementation_WorkPackage",
	"Deliverable":                "Implementation_Deliverable",
	"Implementation_Deliverable": "Implementation_Deliverable",
	"Implementation_Event":       "Implementation_Event",
	"ImplementationEvent":        "Implementation_Event",
	"Plateau":                    "Implementation_Plateau",
	"Implementation_Plateau":     "Implementation_Plateau",
	"Gap":                        "Implementation_Gap",
	"Implementation_Gap":         "Implementation_Gap",
}

// Macro resolves the PlantUML macro for an element type. Unknown types
// fall back to "<Layer>_<Type>", except in the Physical layer whose
// macros carry no prefix in the include.
func Macro(elementType string, layer model.Layer) string {
	if m, ok := macroTable[elementType]; ok {
		return m
	}
	if layer == model.LayerPhysical {
		return elementType
	}
	return string(layer) + "_" + elementType
}
