package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Service guarda as mensagens por idioma usadas nas respostas de erro da API
type Service struct {
	mu              sync.RWMutex
	messages        map[string]map[string]string // [idioma][chave]
	defaultLanguage string
}

// New carrega as traduções embutidas no binário, ou de localesDir quando informado
func New(localesDir, defaultLang string) (*Service, error) {
	if localesDir != "" {
		return NewService(os.DirFS(localesDir), defaultLang)
	}
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, err
	}
	return NewService(sub, defaultLang)
}

// NewService carrega todos os arquivos <idioma>.json da raiz de fsys
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	s := &Service{
		messages:        make(map[string]map[string]string, len(files)),
		defaultLanguage: defaultLang,
	}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}
		s.messages[strings.TrimSuffix(path.Base(file), ".json")] = messages
	}

	if _, ok := s.messages[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}
	return s, nil
}

// T traduz key para lang, caindo no idioma padrão e por fim na própria chave.
// Parâmetros são interpolados com text/template ({{.Resource}}).
func (s *Service) T(lang, key string, params ...map[string]any) string {
	s.mu.RLock()
	message := s.lookup(lang, key)
	if message == "" {
		message = s.lookup(s.defaultLanguage, key)
	}
	s.mu.RUnlock()

	if message == "" {
		return key
	}
	if len(params) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) string {
	return s.messages[lang][key]
}

// DefaultLanguage retorna o idioma de fallback
func (s *Service) DefaultLanguage() string {
	return s.defaultLanguage
}

// Languages retorna os idiomas carregados em ordem alfabética
func (s *Service) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.messages))
	for lang := range s.messages {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Supports verifica se há arquivo de tradução para o idioma
func (s *Service) Supports(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.messages[lang]
	return ok
}
