// Parse files with the comment "//go:generate benchmarkCodeGen"

package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"regexp"
	"strings"
)

var (
	magicGoGenerateCommentRegexp = regexp.MustCompile(`go:generate ([0-9A-Za-z_\.]+)`)
)

const (
	goGenerateExpectedValue = "benchmarkCodeGen"
)

func parseGoFile(filePath string, src interface{}) (*ast.File, error) {
	return parser.ParseFile(token.NewFileSet(), filePath, src, parser.ParseComments)
}

// parseGoGenerateComments returns words passed right after "//go:generate"
// comments.
func parseGoGenerateComments(goFile *ast.File) (result []string) {
	for _, commentGroup := range goFile.Comments {
		for _, comment := range commentGroup.List {
			goGenerateMatches := magicGoGenerateCommentRegexp.FindStringSubmatch(comment.Text)
			if len(goGenerateMatches) < 2 {
				continue
			}
			result = append(result, goGenerateMatches[1:]...)
		}
	}
	return
}

func hasExpectedGoGenerateValue(goFile *ast.File) bool {
	for _, goGenerateArgument := range parseGoGenerateComments(goFile) {
		if goGenerateArgument == goGenerateExpectedValue {
			return true
		}
	}
	return false
}

// findFactoryFunc returns the name of the I.Map constructor declared in the
// file: "NewMapWithArgs" if there is one, otherwise "NewWithArgs".
func findFactoryFunc(goFile *ast.File) string {
	var result string
	for _, decl := range goFile.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv != nil {
			continue
		}
		switch funcDecl.Name.Name {
		case "NewMapWithArgs":
			return funcDecl.Name.Name
		case "NewWithArgs":
			result = funcDecl.Name.Name
		}
	}
	return result
}

// newHashMapSourceFile returns nil if the file isn't marked for generation.
func newHashMapSourceFile(fileName string, goFile *ast.File) *hashMapSourceFile {
	if !hasExpectedGoGenerateValue(goFile) {
		return nil
	}
	return &hashMapSourceFile{
		PackageName: goFile.Name.Name,
		Name:        fileName,
		FactoryFunc: findFactoryFunc(goFile),
	}
}

func isGeneratorInput(fileName string) bool {
	return strings.HasSuffix(fileName, ".go") && !strings.HasSuffix(fileName, "_test.go")
}

func parseHashMapSourceFiles(dirPath string) (hashMapSourceFiles, error) {
	var fileNames []string
	if fileName := os.Getenv("GOFILE"); fileName != "" {
		fileNames = append(fileNames, fileName)
	} else {
		entries, err := os.ReadDir(dirPath)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !isGeneratorInput(entry.Name()) {
				continue
			}
			fileNames = append(fileNames, entry.Name())
		}
	}

	var result hashMapSourceFiles
	for _, fileName := range fileNames {
		goFile, err := parseGoFile(path.Join(dirPath, fileName), nil)
		if err != nil {
			return nil, err
		}
		if file := newHashMapSourceFile(fileName, goFile); file != nil {
			result = append(result, *file)
		}
	}
	return result, nil
}
