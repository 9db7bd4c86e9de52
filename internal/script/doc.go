// Package script lets Lua code extend the colorizer.
//
// A script may define a global function
//
//	function token(rest, column)
//	  local m = string.match(rest, "^%$[%w_]+")
//	  if m then return #m, "preprocessor" end
//	  return 0
//	end
//
// which is called for every glyph the built-in rules do not claim. rest is
// the remainder of the line as UTF-8 and column is its 1-based glyph index.
// The function returns the token length in bytes of rest and a color name
// (see document.Color.String). Returning 0 or nil declines.
//
// A script may also describe a whole language with a global table:
//
//	language = {
//	  name = "ini",
//	  extensions = { ".ini" },
//	  line_comments = { ";", "#" },
//	  double_quotes = true,
//	  keywords = { "true", "false" },
//	}
//
// Scripts run with only the base, table, string and math libraries and
// without any way to load further code.
package script
