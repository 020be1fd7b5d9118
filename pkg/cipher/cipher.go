package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Salt fijo para derivar la llave AES desde el secret de configuración.
// Cambiarlo invalida todas las contraseñas y llaves de sesión almacenadas.
const keySalt = "eventos-pro.cipher.v1"

// Cipher servicio de cifrado simétrico determinístico (AES-256-CTR con IV
// derivado de la llave). Determinístico a propósito: el mismo plaintext
// produce siempre el mismo ciphertext, porque el resultado se usa como llave
// de búsqueda en el Session Store y como valor comparable de contraseña.
type Cipher struct {
	block cipher.Block
	iv    []byte
}

// New deriva la llave AES-256 desde el secret (PBKDF2-SHA256) y construye el
// servicio. Un secret vacío es un error fatal de configuración, no un error
// por petición: el caller (main) debe abortar el arranque.
func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, fmt.Errorf("cipher: secret vacío")
	}
	key := pbkdf2.Key([]byte(secret), []byte(keySalt), 4096, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher: crear bloque AES: %w", err)
	}
	// IV derivado de la llave: fija el keystream y hace el cifrado determinístico.
	sum := sha256.Sum256(append(key, []byte(keySalt)...))
	return &Cipher{block: block, iv: sum[:aes.BlockSize]}, nil
}

// Encrypt cifra el plaintext y devuelve el ciphertext en hex.
// Encrypt(x) == Encrypt(x) siempre, para el mismo secret.
func (c *Cipher) Encrypt(plaintext string) string {
	src := []byte(plaintext)
	dst := make([]byte, len(src))
	cipher.NewCTR(c.block, c.iv).XORKeyStream(dst, src)
	return hex.EncodeToString(dst)
}

// Decrypt revierte Encrypt. Devuelve error si el ciphertext no es hex válido.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	src, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("cipher: ciphertext no es hex: %w", err)
	}
	dst := make([]byte, len(src))
	cipher.NewCTR(c.block, c.iv).XORKeyStream(dst, src)
	return string(dst), nil
}
