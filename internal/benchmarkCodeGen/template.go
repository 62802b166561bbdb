package main

const benchmarksFileTemplate = `{{define "header"}}// Code generated by benchmarkCodeGen. DO NOT EDIT.

package {{.PackageName}}

import (
	"testing"

	benchmark "github.com/xaionaro-go/chainmap/internal/benchmarkRoutines"
	I "github.com/xaionaro-go/chainmap/interfaces"
)
{{end}}{{define "factoryFunction"}}
func new{{.KeyTypeTitle}}KeyedMap(initialCapacity uint64) I.Map[{{.KeyType}}, int] {
	return NewWithArgs[{{.KeyType}}, int](initialCapacity)
}
{{end}}{{define "testFunction"}}
func TestGenerated_{{.KeyType}}KeyType(t *testing.T) {
	benchmark.DoTest(t, new{{.KeyTypeTitle}}KeyedMap, benchmark.Generate{{.KeyTypeTitle}}Keys({{.TestKeyAmount}}))
}
{{end}}{{define "testCollisionsFunction"}}
func TestCollisions(t *testing.T) {
	benchmark.DoTestCollisions(t, newUint32KeyedMap, benchmark.GenerateUint32Keys({{.CollisionsKeyAmount}}))
}
{{end}}{{define "benchmarkFunction"}}
func Benchmark{{.Action}}_{{.KeyType}}KeyType_capacity{{.Capacity}}_keyAmount{{.KeyAmount}}(b *testing.B) {
	benchmark.DoBenchmarkOf{{.Action}}(b, new{{.KeyTypeTitle}}KeyedMap, {{.Capacity}}, benchmark.Generate{{.KeyTypeTitle}}Keys({{.KeyAmount}}))
}
{{end}}`
