package strapi

import (
	"fmt"
	"net/url"
)

// Params parámetros de consulta al content API (populate, sort, filters...).
// La codificación es determinista (claves ordenadas) para que los parámetros
// sirvan como parte de la clave de caché.
type Params map[string][]string

// Populate arma los parámetros populate[i]=campo en el orden dado.
func Populate(fields ...string) Params {
	p := Params{}
	for i, f := range fields {
		p[fmt.Sprintf("populate[%d]", i)] = []string{f}
	}
	return p
}

// Set asigna un parámetro simple y devuelve los mismos Params para encadenar.
func (p Params) Set(key, value string) Params {
	p[key] = []string{value}
	return p
}

// Merge superpone other sobre p sin mutar ninguno de los dos; las claves de
// other ganan (los parámetros del llamador pisan los defaults del recurso).
func Merge(p, other Params) Params {
	out := Params{}
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Encode serializa como query string con las claves en orden estable
// (url.Values ordena las claves al codificar).
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	return url.Values(p).Encode()
}
