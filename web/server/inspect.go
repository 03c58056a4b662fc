package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	PatternType  string                 `json:"patternType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	InShadow     bool                   `json:"inShadow"`
	Color        string                 `json:"color,omitempty"` // Shaded color at the hit
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// handleInspect casts the camera ray through one pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSON(w, sceneErrorStatus(err), map[string]string{"error": err.Error()})
		return
	}

	query := r.URL.Query()
	pixelX, err := parseIntParam(query, "x", -1, 0, sceneObj.Camera.HSize()-1)
	if err == nil && pixelX < 0 {
		err = fmt.Errorf("x is required")
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	pixelY, err := parseIntParam(query, "y", -1, 0, sceneObj.Camera.VSize()-1)
	if err == nil && pixelY < 0 {
		err = fmt.Errorf("y is required")
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}

// inspectPixel casts a ray through the pixel and reports the visible hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	world := sceneObj.World
	ray := sceneObj.Camera.RayForPixel(pixelX, pixelY)

	hit, ok := world.Intersect(ray).Hit()
	if !ok {
		return InspectResponse{Hit: false}
	}

	comps := geometry.PrepareComputations(hit, ray)
	mat := comps.Object.Material()
	patternType, properties := extractMaterialInfo(mat)
	properties["transform"] = matrixRows(comps.Object.Transform())

	return InspectResponse{
		Hit:          true,
		GeometryType: comps.Object.Primitive().Name(),
		PatternType:  patternType,
		Point:        tupleArray(comps.Point),
		Normal:       tupleArray(comps.Normalv),
		Distance:     comps.T,
		Inside:       comps.Inside,
		InShadow:     world.IsShadowed(comps.OverPoint),
		Color:        hexColor(world.ShadeHit(comps)),
		Properties:   properties,
	}
}

// extractMaterialInfo describes the Phong coefficients and the pattern
func extractMaterialInfo(mat *material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"ambient":   mat.Ambient,
		"diffuse":   mat.Diffuse,
		"specular":  mat.Specular,
		"shininess": mat.Shininess,
	}

	switch p := mat.Pattern.(type) {
	case *material.SolidPattern:
		properties["color"] = hexColor(p.Color)
		return "solid", properties

	case *material.StripePattern:
		properties["colors"] = []string{hexColor(p.A), hexColor(p.B)}
		return "stripe", properties

	case *material.TexturePattern:
		properties["textureWidth"] = p.Texture.Width
		properties["textureHeight"] = p.Texture.Height
		return "texture", properties

	default:
		return "unknown", properties
	}
}

// hexColor formats a color as #rrggbb, clamping out of range channels
func hexColor(c core.Color) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x",
		int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5))
}

func matrixRows(m core.Matrix) [][]float64 {
	n := m.Dimension()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
