package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
)

var (
	benchmarkActionNames = []string{"Set", "ReSet", "Get", "GetMiss", "Unset"}
	blockSizes           = []int{16, 1024}
	keyAmounts           = []int{16, 1024, 65536}
)

const benchmarksFileTemplate = `{{define "header"}}// Code generated by benchmarkCodeGen. DO NOT EDIT.

package {{.PackageName}}

import (
	"testing"

	benchmark "github.com/xaionaro-go/chainmap/internal/benchmarkRoutines"
)
{{end}}{{define "testFunction"}}
func TestConformance(t *testing.T) {
	benchmark.DoTest(t, {{.FactoryFunc}})
}
{{end}}{{define "benchmarkFunction"}}
func Benchmark{{.Action}}_blockSize{{.BlockSize}}_keyAmount{{.KeyAmount}}(b *testing.B) {
	benchmark.DoBenchmarkOf{{.Action}}(b, {{.FactoryFunc}}, {{.BlockSize}}, {{.KeyAmount}})
}
{{end}}`

var benchmarksTemplate = template.Must(template.New("benchmarksFileTemplate").Parse(benchmarksFileTemplate))

type hashMapSourceFile struct {
	Name        string
	PackageName string
	FactoryFunc string
}

type hashMapSourceFiles []hashMapSourceFile

// testFileName maps "myMap.go" to "myMap_test.go".
func (file hashMapSourceFile) testFileName() (string, error) {
	if !strings.HasSuffix(file.Name, ".go") || len(file.Name) == len(".go") {
		return "", fmt.Errorf(`not a Go source file name: "%v"`, file.Name)
	}
	return strings.TrimSuffix(file.Name, ".go") + "_test.go", nil
}

func (file hashMapSourceFile) GenerateTestFile() error {
	outFileName, err := file.testFileName()
	if err != nil {
		return err
	}

	outFile, err := os.Create(outFileName)
	if err != nil {
		return err
	}
	defer outFile.Close()

	outFileWriter := bufio.NewWriter(outFile)
	if err := file.writeTestFile(outFileWriter); err != nil {
		return err
	}
	return outFileWriter.Flush()
}

func (file hashMapSourceFile) writeTestFile(w io.Writer) error {
	if file.FactoryFunc == "" {
		return fmt.Errorf(`%v: there's no function "NewMapWithArgs" or "NewWithArgs"`, file.Name)
	}

	data := map[string]interface{}{
		"PackageName": file.PackageName,
		"FactoryFunc": file.FactoryFunc,
	}

	if err := benchmarksTemplate.ExecuteTemplate(w, "header", data); err != nil {
		return err
	}
	if err := benchmarksTemplate.ExecuteTemplate(w, "testFunction", data); err != nil {
		return err
	}

	for _, actionName := range benchmarkActionNames {
		data["Action"] = actionName
		for _, blockSize := range blockSizes {
			data["BlockSize"] = blockSize
			for _, keyAmount := range keyAmounts {
				if keyAmount*1024 < blockSize {
					continue
				}
				data["KeyAmount"] = keyAmount
				if err := benchmarksTemplate.ExecuteTemplate(w, "benchmarkFunction", data); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
