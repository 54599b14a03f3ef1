package describe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auction-house/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func TestGeminiGenerator_Generate(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "Uma peça rara e cobiçada."}}}},
			},
		})
	}))
	defer server.Close()

	gen := NewGeminiGeneratorWithBaseURL("test-key", server.URL)
	text, err := gen.Generate(context.Background(), "Guitarra Fender", []byte{0x01, 0x02}, "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "Uma peça rara e cobiçada.", text)

	require.Contains(t, gotPath, "gemini-2.5-flash")
	require.Len(t, gotBody.Contents, 1)
	parts := gotBody.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	require.Equal(t, "image/jpeg", parts[0].InlineData.MimeType)
	require.True(t, strings.Contains(parts[1].Text, "Guitarra Fender"))
	require.True(t, strings.Contains(parts[1].Text, "Não mencione preço ou lances"))
}

func TestGeminiGenerator_Generate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server_error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed_json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{not json"))
			},
		},
		{
			name: "empty_candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": []}`))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tc.handler)
			defer server.Close()

			gen := NewGeminiGeneratorWithBaseURL("test-key", server.URL)
			_, err := gen.Generate(context.Background(), "título", []byte{0x01}, "image/png")
			require.ErrorIs(t, err, auctionerrors.ErrExternalService)
		})
	}
}

func TestGeminiGenerator_Generate_UnreachableServer(t *testing.T) {
	t.Parallel()

	gen := NewGeminiGeneratorWithBaseURL("test-key", "http://127.0.0.1:1")
	_, err := gen.Generate(context.Background(), "título", []byte{0x01}, "image/png")
	require.ErrorIs(t, err, auctionerrors.ErrExternalService)
}
