package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/engine/colorize"
)

// Language builds a colorize.Language from the script's global language
// table. When the script defines token, the tokenizer is installed as the
// language's custom hook.
func (t *Tokenizer) Language() (*colorize.Language, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrClosed
	}
	tbl, ok := t.L.GetGlobal("language").(*lua.LTable)
	if !ok {
		return nil, ErrNoLanguage
	}

	lang := &colorize.Language{
		Name:                   field(tbl, "name"),
		Extensions:             list(tbl, "extensions"),
		SingleLineComments:     list(tbl, "line_comments"),
		CommentStart:           field(tbl, "comment_start"),
		CommentEnd:             field(tbl, "comment_end"),
		OtherStringStart:       field(tbl, "string_start"),
		OtherStringEnd:         field(tbl, "string_end"),
		OtherStringAltStart:    field(tbl, "string_alt_start"),
		OtherStringAltEnd:      field(tbl, "string_alt_end"),
		HasSingleQuotedStrings: lua.LVAsBool(tbl.RawGetString("single_quotes")),
		HasDoubleQuotedStrings: lua.LVAsBool(tbl.RawGetString("double_quotes")),
		StringEscape:           firstRune(field(tbl, "escape")),
		OtherStringEscape:      firstRune(field(tbl, "string_escape")),
		Preprocessor:           firstRune(field(tbl, "preprocessor")),
		CaseSensitive:          tbl.RawGetString("case_sensitive") != lua.LFalse,
		Keywords:               colorize.NewSet(list(tbl, "keywords")...),
		Declarations:           colorize.NewSet(list(tbl, "declarations")...),
		Identifiers:            colorize.NewSet(list(tbl, "identifiers")...),
	}
	if lang.Name == "" {
		lang.Name = "script"
	}
	if t.fn != nil {
		lang.Tokenizer = t
	}
	return lang, nil
}

func field(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return ""
	}
	return lua.LVAsString(v)
}

func list(tbl *lua.LTable, key string) []string {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LString:
		return []string{string(v)}
	case *lua.LTable:
		out := make([]string, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			if s := lua.LVAsString(v.RawGetInt(i)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
