package main

import (
	"go/parser"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var goGenerateDirectiveRegexp = regexp.MustCompile(`^//go:generate\s+(\S+)`)

const toolName = "benchmarkCodeGen"

// candidateFileNames returns $GOFILE when run by "go generate" and every
// non-test Go file of dirPath otherwise.
func candidateFileNames(dirPath string) ([]string, error) {
	if fileName := os.Getenv("GOFILE"); fileName != "" {
		return []string{fileName}, nil
	}

	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	var fileNames []string
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		fileNames = append(fileNames, name)
	}
	return fileNames, nil
}

// requestsThisTool reports whether the file carries a
// "//go:generate benchmarkCodeGen" directive. The second return value is
// the package name.
func requestsThisTool(path string) (bool, string, error) {
	goFile, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ParseComments)
	if err != nil {
		return false, "", err
	}
	for _, commentGroup := range goFile.Comments {
		for _, comment := range commentGroup.List {
			if match := goGenerateDirectiveRegexp.FindStringSubmatch(comment.Text); match != nil && match[1] == toolName {
				return true, goFile.Name.Name, nil
			}
		}
	}
	return false, "", nil
}

func parseHashMapSourceFiles(dirPath string) (result hashMapSourceFiles) {
	fileNames, err := candidateFileNames(dirPath)
	if err != nil {
		log.Println(err)
		return
	}
	for _, fileName := range fileNames {
		ok, packageName, err := requestsThisTool(filepath.Join(dirPath, fileName))
		if err != nil {
			log.Println(err)
			continue
		}
		if ok {
			result = append(result, hashMapSourceFile{Dir: dirPath, Name: fileName, PackageName: packageName})
		}
	}
	return
}
