package primitives

import (
	"box-viewer/internal/display"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadLitShader returns a shader that does directional light + ambient, tinted by the
// vertex color. Attribute names follow raylib's defaults: vertexPosition, vertexTexCoord,
// vertexNormal, vertexColor.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

// loadLitTexturedShader is loadLitShader with the albedo texture sampled at the mesh UVs.
func loadLitTexturedShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litTexturedFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
out vec4 fragColor;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  fragColor = vertexColor;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
in vec4 fragColor;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse * fragColor;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
in vec4 fragColor;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform sampler2D texture0;
out vec4 finalColor;
void main() {
  vec4 texColor = texture(texture0, fragTexCoord);
  vec4 tint = texColor * colDiffuse * fragColor;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// litShader is a loaded lit shader. The light is fixed for a presentation, so its
// uniforms are written once by newLitShader; only viewPos changes between frames.
type litShader struct {
	shader  rl.Shader
	viewPos int32
}

func newLitShader(shader rl.Shader, light display.Light) litShader {
	s := litShader{shader: shader, viewPos: rl.GetShaderLocation(shader, "viewPos")}
	dir := light.Direction.Normalize().Array()
	s.set("lightDir", dir[:], rl.ShaderUniformVec3)
	s.set("lightColor", []float32{light.Color.R, light.Color.G, light.Color.B}, rl.ShaderUniformVec3)
	s.set("ambient", []float32{light.Ambient.R, light.Ambient.G, light.Ambient.B, 1}, rl.ShaderUniformVec4)
	s.set("lightIntensity", []float32{light.Intensity}, rl.ShaderUniformFloat)
	s.set("specularPower", []float32{light.SpecularPower}, rl.ShaderUniformFloat)
	s.set("specularStrength", []float32{light.SpecularStrength}, rl.ShaderUniformFloat)
	return s
}

// set writes one uniform. Names the GLSL compiler optimized away are skipped.
func (s litShader) set(name string, value []float32, typ rl.ShaderUniformDataType) {
	if loc := rl.GetShaderLocation(s.shader, name); loc >= 0 {
		rl.SetShaderValue(s.shader, loc, value, typ)
	}
}

func (s litShader) setViewPos(pos [3]float32) {
	if s.viewPos >= 0 {
		rl.SetShaderValue(s.shader, s.viewPos, pos[:], rl.ShaderUniformVec3)
	}
}
