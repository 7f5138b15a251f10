package esbuild

// BuildOptions exposes buildOptions for white-box testing.
var BuildOptions = buildOptions
