package render

// Shader de cena: luz direcional + ambiente da zona + neblina linear.
// Usa os atributos e uniforms padrão do raylib (mvp, matModel, colDiffuse, texture0).

const sceneVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;
uniform mat4 matModel;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = normalize(mat3(matModel) * vertexNormal);
    fragWorldPos = vec3(matModel * vec4(vertexPosition, 1.0));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const sceneFragmentShader = `
#version 330

in vec2 fragTexCoord;
in vec4 fragColor;
in vec3 fragNormal;
in vec3 fragWorldPos;

uniform sampler2D texture0;
uniform vec4 colDiffuse;

uniform vec3 viewPos;
uniform vec3 lightDir;     // Direção para onde a luz aponta
uniform vec4 lightColor;
uniform vec4 ambientColor;
uniform vec4 fogColor;
uniform float fogStart;
uniform float fogEnd;

out vec4 finalColor;

void main()
{
    vec4 texel = texture(texture0, fragTexCoord);
    vec4 base = texel * colDiffuse;

    // Ambiente da zona fica em 30% para a luz direcional ainda marcar as faces
    float diffuse = max(dot(normalize(fragNormal), -normalize(lightDir)), 0.0);
    vec3 lit = base.rgb * (ambientColor.rgb * 0.3 + lightColor.rgb * diffuse * 0.7);

    float dist = length(viewPos - fragWorldPos);
    float fog = clamp((dist - fogStart) / max(fogEnd - fogStart, 0.0001), 0.0, 1.0);

    finalColor = vec4(mix(lit, fogColor.rgb, fog), base.a);
}
`
