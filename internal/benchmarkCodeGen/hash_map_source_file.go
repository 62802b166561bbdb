package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	testKeyAmount       = 4096
	collisionsKeyAmount = 65536
	collisionsPackage   = "chainmap"
)

var (
	benchmarkActionNames = []string{"Set", "ReSet", "Get", "GetMiss"}
	capacities           = []int{16}
	keyAmounts           = []int{16, 1024, 65536}
	keyTypes             = []string{"uint32", "string"}
)

type hashMapSourceFile struct {
	Dir         string
	Name        string
	PackageName string
}

type hashMapSourceFiles []hashMapSourceFile

func (files hashMapSourceFiles) GenerateTestFiles() error {
	for _, file := range files {
		err := file.GenerateTestFile()
		if err != nil {
			return err
		}
	}

	return nil
}

// TestFilePath replaces ".go" by "_test.go": chain_map.go -> chain_map_test.go
func (file hashMapSourceFile) TestFilePath() string {
	return filepath.Join(file.Dir, strings.TrimSuffix(file.Name, ".go")+"_test.go")
}

func (file hashMapSourceFile) GenerateTestFile() (err error) {
	if len(file.Name) <= len(".go") || !strings.HasSuffix(file.Name, ".go") {
		return fmt.Errorf(`not a Go source file name: file.Name == "%v"`, file.Name)
	}

	tpl, err := template.New("benchmarksFileTemplate").Parse(benchmarksFileTemplate)
	if err != nil {
		return err
	}

	outFile, err := os.Create(file.TestFilePath())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := outFile.Close(); err == nil {
			err = closeErr
		}
	}()

	outFileWriter := bufio.NewWriter(outFile)
	err = file.writeTestFile(tpl, outFileWriter)
	if err != nil {
		return err
	}
	return outFileWriter.Flush()
}

func keyTypeTitle(keyType string) string {
	return strings.ToUpper(keyType[:1]) + keyType[1:]
}

func (file hashMapSourceFile) writeTestFile(tpl *template.Template, out *bufio.Writer) error {
	data := map[string]interface{}{
		"PackageName":         file.PackageName,
		"TestKeyAmount":       testKeyAmount,
		"CollisionsKeyAmount": collisionsKeyAmount,
	}

	err := tpl.ExecuteTemplate(out, "header", data)
	if err != nil {
		return err
	}

	for _, keyType := range keyTypes {
		data["KeyType"] = keyType
		data["KeyTypeTitle"] = keyTypeTitle(keyType)
		err = tpl.ExecuteTemplate(out, "factoryFunction", data)
		if err != nil {
			return err
		}
	}

	for _, keyType := range keyTypes {
		data["KeyType"] = keyType
		data["KeyTypeTitle"] = keyTypeTitle(keyType)
		err = tpl.ExecuteTemplate(out, "testFunction", data)
		if err != nil {
			return err
		}
	}

	if file.PackageName == collisionsPackage {
		err = tpl.ExecuteTemplate(out, "testCollisionsFunction", data)
		if err != nil {
			return err
		}
	}

	for _, actionName := range benchmarkActionNames {
		data["Action"] = actionName
		for _, capacity := range capacities {
			data["Capacity"] = capacity
			for _, keyAmount := range keyAmounts {
				data["KeyAmount"] = keyAmount
				for _, keyType := range keyTypes {
					data["KeyType"] = keyType
					data["KeyTypeTitle"] = keyTypeTitle(keyType)
					err = tpl.ExecuteTemplate(out, "benchmarkFunction", data)
					if err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}
