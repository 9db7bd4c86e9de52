package colorize

import "slices"

// C returns the language descriptor for C.
func C() *Language {
	return &Language{
		Name:                   "c",
		Extensions:             []string{".c", ".h"},
		SingleLineComments:     []string{"//"},
		CommentStart:           "/*",
		CommentEnd:             "*/",
		HasSingleQuotedStrings: true,
		HasDoubleQuotedStrings: true,
		StringEscape:           '\\',
		Preprocessor:           '#',
		CaseSensitive:          true,
		Keywords:               NewSet(cKeywords...),
		Declarations:           NewSet(cDeclarations...),
		Identifiers:            NewSet(cIdentifiers...),
	}
}

var (
	cKeywords = []string{
		"auto", "break", "case", "continue", "default", "do", "else", "for",
		"goto", "if", "inline", "register", "restrict", "return", "sizeof",
		"static", "switch", "volatile", "while", "_Alignas", "_Alignof",
		"_Atomic", "_Generic", "_Noreturn", "_Static_assert", "_Thread_local",
	}
	cDeclarations = []string{
		"char", "const", "double", "enum", "extern", "float", "int", "long",
		"short", "signed", "struct", "typedef", "union", "unsigned", "void",
		"_Bool", "_Complex", "_Imaginary",
	}
	cIdentifiers = []string{
		"abort", "abs", "atof", "atoi", "calloc", "exit", "fclose", "fgets",
		"fopen", "fprintf", "free", "malloc", "memcpy", "memmove", "memset",
		"printf", "putchar", "puts", "realloc", "scanf", "snprintf", "sprintf",
		"strcat", "strcmp", "strcpy", "strlen", "strncmp", "strncpy", "NULL",
		"size_t", "FILE", "EOF", "stdin", "stdout", "stderr",
	}
)

// CPlusPlus returns the language descriptor for C++.
func CPlusPlus() *Language {
	l := C()
	l.Name = "cpp"
	l.Extensions = []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"}
	l.OtherStringStart = `R"(`
	l.OtherStringEnd = `)"`
	l.Keywords = NewSet(slices.Concat(cKeywords, []string{
		"alignas", "alignof", "catch", "co_await", "co_return", "co_yield",
		"concept", "constexpr", "consteval", "constinit", "const_cast",
		"decltype", "delete", "dynamic_cast", "explicit", "export", "friend",
		"mutable", "new", "noexcept", "operator", "private", "protected",
		"public", "reinterpret_cast", "requires", "static_assert",
		"static_cast", "this", "throw", "try", "typeid", "typename", "using",
		"virtual"})...)
	l.Declarations = NewSet(slices.Concat(cDeclarations, []string{
		"bool", "char8_t", "char16_t", "char32_t", "class", "namespace",
		"template", "wchar_t", "auto"})...)
	l.Identifiers = NewSet(slices.Concat(cIdentifiers, []string{
		"std", "string", "vector", "map", "set", "unique_ptr", "shared_ptr",
		"make_unique", "make_shared", "cout", "cin", "cerr", "endl",
		"nullptr", "true", "false"})...)
	return l
}

// Go returns the language descriptor for Go.
func Go() *Language {
	return &Language{
		Name:                   "go",
		Extensions:             []string{".go"},
		SingleLineComments:     []string{"//"},
		CommentStart:           "/*",
		CommentEnd:             "*/",
		OtherStringStart:       "`",
		OtherStringEnd:         "`",
		HasSingleQuotedStrings: true,
		HasDoubleQuotedStrings: true,
		StringEscape:           '\\',
		CaseSensitive:          true,
		Keywords: NewSet(
			"break", "case", "continue", "default", "defer", "else",
			"fallthrough", "for", "go", "goto", "if", "import", "package",
			"range", "return", "select", "switch"),
		Declarations: NewSet(
			"chan", "const", "func", "interface", "map", "struct", "type", "var"),
		Identifiers: NewSet(
			"true", "false", "nil", "iota",
			"int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
			"float32", "float64", "complex64", "complex128",
			"bool", "byte", "rune", "string", "error", "any", "comparable",
			"make", "new", "len", "cap", "append", "copy", "delete",
			"close", "panic", "recover", "print", "println",
			"real", "imag", "complex", "min", "max", "clear"),
	}
}

// Python returns the language descriptor for Python.
func Python() *Language {
	return &Language{
		Name:                   "python",
		Extensions:             []string{".py", ".pyw", ".pyi"},
		SingleLineComments:     []string{"#"},
		OtherStringStart:       `"""`,
		OtherStringEnd:         `"""`,
		OtherStringAltStart:    "'''",
		OtherStringAltEnd:      "'''",
		HasSingleQuotedStrings: true,
		HasDoubleQuotedStrings: true,
		StringEscape:           '\\',
		OtherStringEscape:      '\\',
		CaseSensitive:          true,
		Keywords: NewSet(
			"if", "elif", "else", "for", "while", "break", "continue",
			"return", "try", "except", "finally", "raise", "with", "as",
			"match", "case", "import", "from", "global", "nonlocal", "pass",
			"yield", "assert", "del", "in", "is", "not", "and", "or", "await"),
		Declarations: NewSet("def", "class", "lambda", "async"),
		Identifiers: NewSet(
			"True", "False", "None", "self",
			"int", "float", "str", "bool", "list", "dict", "set", "tuple",
			"bytes", "bytearray", "complex", "frozenset", "type", "object",
			"print", "len", "range", "enumerate", "zip", "map", "filter",
			"open", "input", "isinstance", "issubclass", "hasattr", "getattr",
			"setattr", "delattr", "callable", "iter", "next", "sorted",
			"reversed", "sum", "min", "max", "abs", "round", "pow", "divmod",
			"all", "any", "format", "repr", "id", "hash", "dir", "vars",
			"super", "property", "staticmethod", "classmethod"),
	}
}

// Lua returns the language descriptor for Lua.
func Lua() *Language {
	return &Language{
		Name:                   "lua",
		Extensions:             []string{".lua"},
		SingleLineComments:     []string{"--"},
		CommentStart:           "--[[",
		CommentEnd:             "]]",
		OtherStringStart:       "[[",
		OtherStringEnd:         "]]",
		HasSingleQuotedStrings: true,
		HasDoubleQuotedStrings: true,
		StringEscape:           '\\',
		CaseSensitive:          true,
		Keywords: NewSet(
			"and", "break", "do", "else", "elseif", "end", "for", "goto",
			"if", "in", "not", "or", "repeat", "return", "then", "until",
			"while"),
		Declarations: NewSet("function", "local"),
		Identifiers: NewSet(
			"true", "false", "nil", "self", "_G", "_ENV",
			"assert", "error", "ipairs", "next", "pairs", "pcall", "print",
			"rawequal", "rawget", "rawlen", "rawset", "require", "select",
			"setmetatable", "getmetatable", "tonumber", "tostring", "type",
			"xpcall", "coroutine", "io", "math", "os", "package", "string",
			"table", "utf8"),
	}
}

// JSON returns the language descriptor for JSON.
func JSON() *Language {
	return &Language{
		Name:                   "json",
		Extensions:             []string{".json"},
		HasDoubleQuotedStrings: true,
		StringEscape:           '\\',
		CaseSensitive:          true,
		Keywords:               NewSet("true", "false", "null"),
	}
}

// SQL returns the language descriptor for SQL. Keywords match regardless
// of case.
func SQL() *Language {
	return &Language{
		Name:                   "sql",
		Extensions:             []string{".sql"},
		SingleLineComments:     []string{"--"},
		CommentStart:           "/*",
		CommentEnd:             "*/",
		HasSingleQuotedStrings: true,
		HasDoubleQuotedStrings: true,
		StringEscape:           '\\',
		CaseSensitive:          false,
		Keywords: NewSet(
			"ADD", "ALL", "ALTER", "AND", "ANY", "AS", "ASC", "BETWEEN", "BY",
			"CASE", "CHECK", "COLUMN", "CONSTRAINT", "CREATE", "DATABASE",
			"DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "END",
			"EXISTS", "FOREIGN", "FROM", "FULL", "GROUP", "HAVING", "IN",
			"INDEX", "INNER", "INSERT", "INTO", "IS", "JOIN", "KEY", "LEFT",
			"LIKE", "LIMIT", "NOT", "NULL", "ON", "OR", "ORDER", "OUTER",
			"PRIMARY", "REFERENCES", "RIGHT", "SELECT", "SET", "TABLE", "THEN",
			"TOP", "TRUNCATE", "UNION", "UNIQUE", "UPDATE", "VALUES", "VIEW",
			"WHEN", "WHERE", "WITH"),
		Declarations: NewSet(
			"BIGINT", "BLOB", "BOOLEAN", "CHAR", "DATE", "DATETIME", "DECIMAL",
			"DOUBLE", "FLOAT", "INT", "INTEGER", "NUMERIC", "REAL", "SMALLINT",
			"TEXT", "TIME", "TIMESTAMP", "VARCHAR"),
		Identifiers: NewSet(
			"AVG", "COALESCE", "COUNT", "MAX", "MIN", "NOW", "SUM", "UPPER",
			"LOWER", "LENGTH", "SUBSTR", "CAST", "ROUND"),
	}
}

var builtins = []func() *Language{C, CPlusPlus, Go, Python, Lua, JSON, SQL}
