package web

import "embed"

// テンプレートと静的ファイルはバイナリに埋め込む

//go:embed templates/*.html
var TemplatesFS embed.FS

//go:embed static
var StaticFS embed.FS
