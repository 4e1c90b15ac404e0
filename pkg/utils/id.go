package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alfabeto sem símbolos, seguro para URLs e claims JWT
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador aleatório alfanumérico com o tamanho informado
func GenerateID(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("tamanho de id inválido: %d", size)
	}
	return gonanoid.Generate(idAlphabet, size)
}
