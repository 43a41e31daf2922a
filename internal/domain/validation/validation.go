// Package validation contiene chequeos puros sobre la entrada cruda del
// usuario. Cada función devuelve nil si la entrada es válida o un
// domain.ValidationError con el mensaje que se muestra tal cual.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/istore-api/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

const (
	minPasswordLength  = 6
	minPseudoLength    = 2
	minStoreNameLength = 2
)

// Email valida formato local@dominio.tld.
func Email(email string) error {
	if IsEmpty(email) {
		return domain.Validation("el email es requerido")
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return domain.Validation("formato de email inválido")
	}
	return nil
}

// Password valida la contraseña (no vacía, largo mínimo). No se hace trim:
// los espacios forman parte de la contraseña.
func Password(password string) error {
	if password == "" {
		return domain.Validation("la contraseña es requerida")
	}
	if len(password) < minPasswordLength {
		return domain.Validation("la contraseña debe tener al menos 6 caracteres")
	}
	return nil
}

// Pseudo valida el nombre visible del usuario.
func Pseudo(pseudo string) error {
	if IsEmpty(pseudo) {
		return domain.Validation("el pseudo es requerido")
	}
	if len(strings.TrimSpace(pseudo)) < minPseudoLength {
		return domain.Validation("el pseudo debe tener al menos 2 caracteres")
	}
	return nil
}

// StoreName valida el nombre de una tienda.
func StoreName(name string) error {
	if IsEmpty(name) {
		return domain.Validation("el nombre de la tienda es requerido")
	}
	if len(strings.TrimSpace(name)) < minStoreNameLength {
		return domain.Validation("el nombre de la tienda debe tener al menos 2 caracteres")
	}
	return nil
}

// ItemName valida el nombre de un artículo.
func ItemName(name string) error {
	if IsEmpty(name) {
		return domain.Validation("el nombre del artículo es requerido")
	}
	return nil
}

// ParsePrice parsea y valida un precio no negativo desde string.
func ParsePrice(priceStr string) (decimal.Decimal, error) {
	if IsEmpty(priceStr) {
		return decimal.Zero, domain.Validation("el precio es requerido")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(priceStr))
	if err != nil {
		return decimal.Zero, domain.Validation("el precio debe ser un número válido")
	}
	if price.IsNegative() {
		return decimal.Zero, domain.Validation("el precio no puede ser negativo")
	}
	return price, nil
}

// ParseQuantity parsea y valida una cantidad entera no negativa desde string.
func ParseQuantity(quantityStr string) (int, error) {
	if IsEmpty(quantityStr) {
		return 0, domain.Validation("la cantidad es requerida")
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(quantityStr))
	if err != nil {
		return 0, domain.Validation("la cantidad debe ser un número entero")
	}
	if quantity < 0 {
		return 0, domain.Validation("la cantidad no puede ser negativa")
	}
	return quantity, nil
}

// NormalizeEmail devuelve el email en su forma canónica (trim + minúsculas).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmpty indica si la cadena es vacía o solo espacios.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
