// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Uncategorized agrupa produtos sem categoria resolvível
	Uncategorized = "Uncategorized"
	// Unknown substitui fornecedor, vendedor ou forma de pagamento ausentes
	Unknown = "Unknown"
)

type RefKind string

const (
	RefKindName RefKind = "name"
	RefKindRef  RefKind = "ref"
)

// NamedRef representa campos como categoria e fornecedor, que o backend envia
// ora como texto puro, ora como objeto com "nome" ou "name"
type NamedRef struct {
	Kind  RefKind
	Value string
}

func NameRef(value string) *NamedRef {
	return &NamedRef{Kind: RefKindName, Value: value}
}

func ObjectRef(value string) *NamedRef {
	return &NamedRef{Kind: RefKindRef, Value: value}
}

// Resolve devolve o nome normalizado ou fallback quando a referência está vazia
func (r *NamedRef) Resolve(fallback string) string {
	if r == nil {
		return fallback
	}

	value := strings.TrimSpace(r.Value)
	if value == "" {
		return fallback
	}

	return value
}

func (r *NamedRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = NamedRef{}
		return nil
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*r = NamedRef{Kind: RefKindName, Value: value}
		return nil
	}

	// Objeto de referência: "nome" tem precedência sobre "name"
	var ref struct {
		Nome *string `json:"nome"`
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &ref); err != nil {
		// Formatos inesperados (número, lista) viram referência vazia
		*r = NamedRef{Kind: RefKindRef}
		return nil
	}

	value := ""
	if ref.Nome != nil && strings.TrimSpace(*ref.Nome) != "" {
		value = *ref.Nome
	} else if ref.Name != nil {
		value = *ref.Name
	}

	*r = NamedRef{Kind: RefKindRef, Value: value}
	return nil
}

func (r NamedRef) MarshalJSON() ([]byte, error) {
	if r.Kind == RefKindRef {
		return json.Marshal(map[string]string{"nome": r.Value})
	}

	return json.Marshal(r.Value)
}
