// Package labelxml exporta plantillas de etiqueta al XML de layout que consumen las impresoras.
package labelxml

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/ilms-api/internal/application/ports"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

// Namespace del documento de layout.
const Namespace = "urn:ilms:label-layout:1"

var _ ports.LabelXMLExporter = (*Exporter)(nil)

// Exporter implementa ports.LabelXMLExporter con etree; la huella sale de la forma C14N.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export serializa la plantilla y calcula el SHA-256 (hex) de su forma canónica.
func (e *Exporter) Export(t *entity.LabelTemplate) ([]byte, string, error) {
	doc, err := Build(t)
	if err != nil {
		return nil, "", err
	}
	doc.Indent(2)
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("labelxml: serializar: %w", err)
	}
	fp, err := Fingerprint(body)
	if err != nil {
		return nil, "", err
	}
	return append([]byte(xml.Header), body...), fp, nil
}

// Build arma el documento XML de la plantilla, sin declaración; Export la antepone.
func Build(t *entity.LabelTemplate) (*etree.Document, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("LabelTemplate")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("id", strconv.FormatInt(t.ID, 10))
	root.CreateAttr("level", t.LevelName)
	root.CreateAttr("status", t.Status)

	root.CreateElement("Name").SetText(t.Name)

	size := root.CreateElement("Size")
	size.CreateAttr("unit", "mm")
	if t.WidthMM.Valid {
		size.CreateAttr("width", t.WidthMM.Decimal.String())
	}
	if t.HeightMM.Valid {
		size.CreateAttr("height", t.HeightMM.Decimal.String())
	}

	if t.MaterialCode != nil {
		root.CreateElement("Material").CreateAttr("code", *t.MaterialCode)
	}

	elements, err := layoutElements(t.Layout)
	if err != nil {
		return nil, fmt.Errorf("labelxml: layout: %w", err)
	}
	layout := root.CreateElement("Layout")
	for _, el := range elements {
		addElement(layout, el)
	}
	return doc, nil
}

// Fingerprint SHA-256 en hex del XML canonicalizado (C14N 1.0 sin comentarios).
func Fingerprint(doc []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	dec.Entity = map[string]string{}
	canon, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("labelxml: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

// layoutElements acepta el arreglo de elementos del diseñador, el mismo arreglo serializado
// como string JSON, o un objeto con la llave "elements".
func layoutElements(raw json.RawMessage) ([]map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return nil, nil
		}
		raw = json.RawMessage(asString)
	}

	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var obj struct {
		Elements []map[string]any `json:"elements"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return obj.Elements, nil
}

// addElement escribe un elemento del layout: "content" va como texto y el resto
// como atributos en orden alfabético para que la salida sea estable.
func addElement(parent *etree.Element, el map[string]any) {
	e := parent.CreateElement("Element")
	keys := make([]string, 0, len(el))
	for k := range el {
		if k != "content" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v, ok := scalar(el[k]); ok {
			e.CreateAttr(k, v)
		}
	}
	if c, ok := scalar(el["content"]); ok && c != "" {
		e.SetText(c)
	}
}

func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	}
	return "", false
}
