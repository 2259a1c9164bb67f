// Package i18n contiene el catálogo de avisos que se muestran al usuario.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifica un aviso del catálogo.
type Key string

const (
	KeyStockUnavailable Key = "notice.stock_unavailable"
	KeyAddFailed        Key = "notice.add_failed"
	KeyRemoveFailed     Key = "notice.remove_failed"
	KeyUpdateFailed     Key = "notice.update_failed"
)

// El primer idioma es el de respaldo cuando el locale no coincide con ninguno.
var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.Spanish,
	language.English,
}

var texts = map[language.Tag]map[Key]string{
	language.BrazilianPortuguese: {
		KeyStockUnavailable: "Quantidade solicitada fora de estoque",
		KeyAddFailed:        "Erro na adição do produto",
		KeyRemoveFailed:     "Erro na remoção do produto",
		KeyUpdateFailed:     "Erro na alteração de quantidade do produto",
	},
	language.Spanish: {
		KeyStockUnavailable: "Cantidad solicitada fuera de stock",
		KeyAddFailed:        "Error al agregar el producto",
		KeyRemoveFailed:     "Error al eliminar el producto",
		KeyUpdateFailed:     "Error al cambiar la cantidad del producto",
	},
	language.English: {
		KeyStockUnavailable: "Requested quantity is out of stock",
		KeyAddFailed:        "Error adding product",
		KeyRemoveFailed:     "Error removing product",
		KeyUpdateFailed:     "Error changing product quantity",
	},
}

// Catalog traduce claves de aviso al idioma configurado.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog construye el catálogo para el locale indicado (ej. "pt-BR", "es", "en").
// Un locale vacío o desconocido usa pt-BR.
func NewCatalog(locale string) *Catalog {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for tag, msgs := range texts {
		for k, v := range msgs {
			_ = b.SetString(tag, string(k), v)
		}
	}

	tag := supported[0]
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, conf := language.NewMatcher(supported).Match(parsed)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}
}

// Language idioma efectivo del catálogo.
func (c *Catalog) Language() language.Tag { return c.tag }

// Text devuelve el texto del aviso.
func (c *Catalog) Text(k Key) string {
	return c.printer.Sprintf(string(k))
}
