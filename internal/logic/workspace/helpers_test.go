package workspace_test

import (
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

// testNotFoundError and testAlreadyExistsError implement the private error
// interfaces so mocks can return them and the domain recognizes them.
type testNotFoundError struct{}

func (testNotFoundError) Error() string { return "not found" }
func (testNotFoundError) IsNotFound()   {}

type testAlreadyExistsError struct{}

func (testAlreadyExistsError) Error() string    { return "already exists" }
func (testAlreadyExistsError) IsAlreadyExists() {}

func testQty(s string) resource.Quantity {
	return resource.MustParse(s)
}

func testLimits() workspace.ResourceLimits {
	return workspace.ResourceLimits{
		CPU:     testQty("1"),
		Memory:  testQty("2Gi"),
		Storage: testQty("10Gi"),
	}
}
