package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sphere mesh resolution. Control points are small on screen; 12×12 is enough to look round.
const (
	sphereRings  = 12
	sphereSlices = 12
)

// Lit draws unit primitives with a directional-light shader. Meshes and materials are created on
// first Draw so that GPU resources are allocated after the window/OpenGL context exists.
type Lit struct {
	sphere   rl.Mesh
	mtl      rl.Material
	ready    bool
	viewPos  [3]float32 // camera position, set each frame for specular
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewLit returns a primitive drawer lit from above-right until SetView says otherwise.
func NewLit() *Lit {
	return &Lit{lightDir: [3]float32{0.5, 1, 0.5}}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing.
func (l *Lit) SetView(viewPos, lightDir [3]float32) {
	l.viewPos = viewPos
	l.lightDir = lightDir
}

func (l *Lit) ensure() {
	if l.ready {
		return
	}
	// Radius 0.5 so a scale of 2r gives a sphere of radius r.
	l.sphere = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	l.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		l.mtl.Shader = shader
	}
	l.ready = true
}

// DrawSphere draws a sphere of the given radius centered at center, tinted c.
// Must be called between BeginMode3D and EndMode3D.
func (l *Lit) DrawSphere(center [3]float32, radius float32, c rl.Color) {
	l.ensure()
	if albedo := l.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	l.setUniforms(l.mtl.Shader)
	d := 2 * radius
	transform := rl.MatrixMultiply(rl.MatrixScale(d, d, d), rl.MatrixTranslate(center[0], center[1], center[2]))
	rl.DrawMesh(l.sphere, l.mtl, transform)
}

// Unload frees the GPU resources. The drawer recreates them if used again.
func (l *Lit) Unload() {
	if !l.ready {
		return
	}
	rl.UnloadMesh(&l.sphere)
	rl.UnloadMaterial(l.mtl)
	l.ready = false
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * 0.75;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * specularStrength;
  finalColor = vec4(amb + diffuse + vec3(spec) * (NdotL > 0.0 ? 1.0 : 0.0), colDiffuse.a);
}
`
)

var defaultAmbient = [4]float32{0.35, 0.36, 0.4, 1.0}

const (
	defaultSpecularPower    = float32(32.0)
	defaultSpecularStrength = float32(0.4)
)

// setUniforms sets viewPos, lightDir, ambient and specular terms (cgo-safe: local arrays).
func (l *Lit) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{l.viewPos[0], l.viewPos[1], l.viewPos[2]}
	lightDir := [3]float32{l.lightDir[0], l.lightDir[1], l.lightDir[2]}
	amb := defaultAmbient
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}
