package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionJSON(content string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"created": 1,
		"model": "test-model",
		"choices": [
			{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": %q}}
		]
	}`, content)
}

func matrixINI(baseURL string) string {
	return fmt.Sprintf(`
[openai]
api_key = sk-test
base_url = %s
model = test-model

[request]
prompt_template = ping
response_format = json
max_tokens = 5
stop_sequence = STOP
`, baseURL)
}

func TestMatrix_EndToEnd(t *testing.T) {
	var mu sync.Mutex
	var bodies []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)
		mu.Lock()
		bodies = append(bodies, body)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionJSON("pong"))
	}))
	defer server.Close()

	path := writeConfig(t, "config.ini", matrixINI(server.URL))

	out := execute(t, "matrix", "--config", path, "--quiet")

	require.Len(t, bodies, 8, "one request per flag combination")

	assert.Contains(t, out, "Перебор всех комбинаций опциональных параметров")
	assert.Contains(t, out, "Запрос: ping")
	assert.Contains(t, out, "--- Вариант 1: без параметров ---")
	assert.Contains(t, out, "--- Вариант 5: формат=json ---")
	assert.Contains(t, out, "--- Вариант 8: формат=json, max_tokens=5, stop='STOP' ---")
	assert.Equal(t, 8, strings.Count(out, "Ответ:\npong"))

	// Trial 1 (no flags): no optional fields on the wire.
	for _, field := range []string{"max_tokens", "stop", "response_format"} {
		_, present := bodies[0][field]
		assert.False(t, present, "trial 1 must not send %q", field)
	}
	messages := bodies[0]["messages"].([]any)
	require.Len(t, messages, 1, "trial 1 has no system message")

	// Trial 8 (all flags): every optional field set.
	last := bodies[7]
	assert.EqualValues(t, 5, last["max_tokens"])
	assert.Equal(t, "STOP", last["stop"])
	format, ok := last["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
	lastMessages := last["messages"].([]any)
	require.Len(t, lastMessages, 2)
}

func TestMatrix_TrialFailureDoesNotStopTheRest(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 3 {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error": {"message": "boom", "type": "server_error"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionJSON("pong"))
	}))
	defer server.Close()

	path := writeConfig(t, "config.ini", matrixINI(server.URL))

	out := execute(t, "matrix", "--config", path, "--quiet")

	assert.Equal(t, 8, calls, "all trials must still run")
	assert.Equal(t, 1, strings.Count(out, "Ошибка:"))
	assert.Equal(t, 7, strings.Count(out, "Ответ:\npong"))
	assert.Contains(t, out, "--- Вариант 8:")
}

func TestMatrix_MissingKeyAborts(t *testing.T) {
	path := writeConfig(t, "config.ini", `
[openai]
api_key = sk-test
model = test-model

[request]
prompt_template = ping
response_format = json
max_tokens = 5
`)

	out := execute(t, "matrix", "--config", path, "--quiet")

	assert.Contains(t, out, "Ошибка конфигурации")
	assert.Contains(t, out, "stop_sequence")
	assert.NotContains(t, out, "--- Вариант")
}

func TestMatrix_PlaceholderKeyAborts(t *testing.T) {
	path := writeConfig(t, "config.ini", `
[openai]
api_key = your-api-key-here
model = test-model

[request]
prompt_template = ping
response_format = json
max_tokens = 5
stop_sequence = STOP
`)

	out := execute(t, "matrix", "--config", path, "--quiet")

	assert.Equal(t, 1, strings.Count(out, "Внимание"))
	assert.NotContains(t, out, "--- Вариант")
}
