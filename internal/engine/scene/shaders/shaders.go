// Package shaders holds the GLSL sources for the globe scene.
package shaders

// GlobeVertexShader transforms the sphere mesh and passes world-space
// normals for day/night shading.
const GlobeVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorldPos;
out vec2 vUV;

void main() {
    vNormal = mat3(uModel) * aNormal;
    vWorldPos = (uModel * vec4(aPos, 1.0)).xyz;
    vUV = aUV;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

// GlobeFragmentShader blends day and night maps across the terminator and
// adds a sun specular highlight over water. Water is detected with a
// blue-dominance heuristic on the day map, which is good enough for both
// real imagery and the procedural fallback.
const GlobeFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vWorldPos;
in vec2 vUV;

uniform sampler2D uDayTex;
uniform sampler2D uNightTex;
uniform vec3 uSunDir;
uniform vec3 uCameraPos;
uniform float uShininess;
uniform vec3 uSpecularTint;
uniform float uLightIntensity;

out vec4 fragColor;

void main() {
    vec3 n = normalize(vNormal);
    float sunDot = dot(n, normalize(uSunDir));

    // Soft terminator: full day above 0.12, full night below -0.12.
    float dayAmount = smoothstep(-0.12, 0.12, sunDot);

    vec3 day = texture(uDayTex, vUV).rgb * uLightIntensity;
    vec3 night = texture(uNightTex, vUV).rgb;
    vec3 base = mix(night, day, dayAmount);

    // Ocean specular, daylit side only.
    vec3 dayColor = texture(uDayTex, vUV).rgb;
    float waterMask = clamp((dayColor.b - dayColor.r) * 4.0, 0.0, 1.0);
    vec3 viewDir = normalize(uCameraPos - vWorldPos);
    vec3 halfDir = normalize(normalize(uSunDir) + viewDir);
    float spec = pow(max(dot(n, halfDir), 0.0), uShininess);
    base += uSpecularTint * spec * waterMask * dayAmount;

    fragColor = vec4(base, 1.0);
}
`

// CloudVertexShader is the globe vertex shader without normals matrix
// tricks; the cloud sphere reuses positions and UVs.
const CloudVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec2 vUV;

void main() {
    vNormal = mat3(uModel) * aNormal;
    vUV = aUV;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

// CloudFragmentShader dims the cloud layer on the night side.
const CloudFragmentShader = `#version 410 core
in vec3 vNormal;
in vec2 vUV;

uniform sampler2D uCloudTex;
uniform vec3 uSunDir;

out vec4 fragColor;

void main() {
    vec4 c = texture(uCloudTex, vUV);
    float sunDot = dot(normalize(vNormal), normalize(uSunDir));
    float lit = 0.08 + 0.92 * smoothstep(-0.12, 0.2, sunDot);
    fragColor = vec4(c.rgb * lit, c.a);
}
`

// AtmosphereVertexShader renders the rim sphere.
const AtmosphereVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
    vNormal = mat3(uModel) * aNormal;
    vWorldPos = (uModel * vec4(aPos, 1.0)).xyz;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

// AtmosphereFragmentShader draws an additive halo on the sphere's back
// faces, blending day blue through twilight orange into night.
const AtmosphereFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uSunDir;
uniform vec3 uCameraPos;

out vec4 fragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 viewDir = normalize(uCameraPos - vWorldPos);

    // Back faces only; rim strength peaks at the silhouette.
    float rim = pow(1.0 - abs(dot(n, viewDir)), 2.5);
    float sunDot = dot(n, normalize(uSunDir));

    vec3 dayColor = vec3(0.35, 0.55, 1.0);
    vec3 twilightColor = vec3(0.9, 0.45, 0.2);
    vec3 nightColor = vec3(0.02, 0.04, 0.12);

    float twilight = 1.0 - smoothstep(0.0, 0.35, abs(sunDot));
    vec3 color = mix(nightColor, dayColor, smoothstep(-0.2, 0.3, sunDot));
    color = mix(color, twilightColor, twilight * 0.6);

    fragColor = vec4(color, rim * 0.55);
}
`

// LineVertexShader renders the overlay line segments with per-vertex color.
const LineVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;

uniform mat4 uMVP;

out vec3 vColor;

void main() {
    vColor = aColor;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

// LineFragmentShader applies a uniform alpha over the vertex color.
const LineFragmentShader = `#version 410 core
in vec3 vColor;

uniform float uAlpha;

out vec4 fragColor;

void main() {
    fragColor = vec4(vColor, uAlpha);
}
`

// StarVertexShader renders the static star field points.
const StarVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in float aBrightness;

uniform mat4 uViewProj;

out float vBrightness;

void main() {
    vBrightness = aBrightness;
    gl_Position = uViewProj * vec4(aPos, 1.0);
    gl_PointSize = 1.5;
}
`

// StarFragmentShader tints stars slightly blue-white.
const StarFragmentShader = `#version 410 core
in float vBrightness;

out vec4 fragColor;

void main() {
    fragColor = vec4(vec3(0.9, 0.93, 1.0) * vBrightness, 1.0);
}
`
