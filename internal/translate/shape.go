package translate

// Shape identifies which dispatch rule matched a statement
type Shape int

const (
	ShapeNone Shape = iota
	ShapeCasework
	ShapeProofOpen
	ShapeProofContradictionOpen
	ShapeProofClose
	ShapeContradictionClose
	ShapeCausal
	ShapeGraph
	ShapePointMulti
	ShapePointIntersection
	ShapePointOnObjectWithConditions
	ShapePointOnObject
	ShapePointCoordinate
	ShapePointWithConditions
	ShapePoint
	ShapeSegmentMalformed
	ShapeSegmentList
	ShapeSegment
	ShapeLine
	ShapeRay
	ShapeCircleThreePoint
	ShapeCircleCenterRadius
	ShapeCircleCenterPoint
	ShapePolygonProperty
	ShapePolygon
	ShapeRegularPolygon
	ShapeArea
	ShapePerimeter
	ShapeAngle
	ShapeEquality
	ShapeProperty
	ShapeRelationship
	ShapeProofQuery
	ShapeQuestion
	ShapePassthrough
)

var shapeNames = map[Shape]string{
	ShapeNone:                        "none",
	ShapeCasework:                    "casework",
	ShapeProofOpen:                   "proof-open",
	ShapeProofContradictionOpen:      "proof-contradiction-open",
	ShapeProofClose:                  "proof-close",
	ShapeContradictionClose:          "contradiction-close",
	ShapeCausal:                      "causal-connective",
	ShapeGraph:                       "graph",
	ShapePointMulti:                  "point-multi",
	ShapePointIntersection:           "point-intersection",
	ShapePointOnObjectWithConditions: "point-on-object-with-conditions",
	ShapePointOnObject:               "point-on-object",
	ShapePointCoordinate:             "point-coordinate",
	ShapePointWithConditions:         "point-with-conditions",
	ShapePoint:                       "point",
	ShapeSegmentMalformed:            "segment-malformed",
	ShapeSegmentList:                 "segment-list",
	ShapeSegment:                     "segment",
	ShapeLine:                        "line",
	ShapeRay:                         "ray",
	ShapeCircleThreePoint:            "circle-three-point",
	ShapeCircleCenterRadius:          "circle-center-radius",
	ShapeCircleCenterPoint:           "circle-center-point",
	ShapePolygonProperty:             "polygon-property",
	ShapePolygon:                     "polygon",
	ShapeRegularPolygon:              "regular-polygon",
	ShapeArea:                        "area",
	ShapePerimeter:                   "perimeter",
	ShapeAngle:                       "angle",
	ShapeEquality:                    "equality",
	ShapeProperty:                    "property",
	ShapeRelationship:                "relationship",
	ShapeProofQuery:                  "proof-query",
	ShapeQuestion:                    "question",
	ShapePassthrough:                 "passthrough",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}
