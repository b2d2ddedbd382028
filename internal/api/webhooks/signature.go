package webhooks

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"sort"
)

// VerifyHMACSHA256 проверяет hex-подпись HMAC-SHA256 сырого тела запроса.
// Такой схемой подписывают вебхуки Vapi и Retell.
func VerifyHMACSHA256(secret string, payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyTwilioSignature проверяет заголовок X-Twilio-Signature:
// HMAC-SHA1 в base64 от полного URL, к которому приклеены отсортированные
// по ключу пары формы.
func VerifyTwilioSignature(authToken, fullURL string, form url.Values, signature string) bool {
	keys := make([]string, 0, len(form))
	for key := range form {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	payload := fullURL
	for _, key := range keys {
		for _, value := range form[key] {
			payload += key + value
		}
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(payload))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
