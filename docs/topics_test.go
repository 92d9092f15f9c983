package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics returns the topics listed in readme.md as "* topic: description".
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic file is
	// listed in readme.md.
	listed := readmeTopics(t)
	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		topic := strings.TrimSuffix(filepath.Base(file), ".md")
		if topic != index && !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	sorted := slices.Clone(listed)
	slices.Sort(sorted)
	if !slices.Equal(all, sorted) {
		t.Errorf("GetAllTopics() = %v, want %v", all, sorted)
	}
}

func TestGetTopics(t *testing.T) {
	star, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) failed: %v", err)
	}
	for _, heading := range []string{"# Interactive Menu", "# Storage", "# Zakat", "# Reports", "# Query", "# Configuration"} {
		if !strings.Contains(star, heading) {
			t.Errorf("GetTopic(*) does not contain %q", heading)
		}
	}

	if _, err := GetTopics("zakat", "unknown"); err == nil {
		t.Error("GetTopics() with an unknown topic succeeded")
	}
}

func TestTopicHeadings(t *testing.T) {
	// Every topic starts with a single level 1 heading.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			first, ok := root.FirstChild().(*ast.Heading)
			if !ok || first.Level != 1 {
				t.Errorf("%s does not start with a level 1 heading", file)
			}
			var h1 int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("%s has %d level 1 headings, want 1", file, h1)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	testCases := []struct {
		topic string
		want  string
	}{
		{"readme", "InvestMate"},
		{"menu", "Interactive Menu"},
		{"zakat", "Zakat"},
	}
	for _, tc := range testCases {
		t.Run(tc.topic, func(t *testing.T) {
			got, err := Title(tc.topic)
			if err != nil {
				t.Fatalf("Title(%q) failed: %v", tc.topic, err)
			}
			if got != tc.want {
				t.Errorf("Title(%q) = %q, want %q", tc.topic, got, tc.want)
			}
		})
	}
	if _, err := Title("unknown"); err == nil {
		t.Error("Title(unknown) succeeded")
	}
}
