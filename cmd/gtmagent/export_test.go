package main

// NewPipeline exposes newPipeline to the external test package.
var NewPipeline = newPipeline
