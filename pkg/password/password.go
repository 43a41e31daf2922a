// Package password hashea y verifica contraseñas con bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Costo del hash: 12 rondas. Más alto = más caro de fuerza bruta y más lento.
const bcryptCost = 12

// Hash hashea una contraseña en claro con bcrypt. Dos llamadas con la misma
// entrada producen digests distintos (salt aleatorio) que verifican igual.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify indica si la contraseña en claro corresponde al digest almacenado.
// Nunca retorna error: un digest malformado verifica como false.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
