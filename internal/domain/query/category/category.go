package category

// Category is the technology domain a query is about.
type Category string

// Category constants. The classifier evaluates keyword groups in this
// order; General is the fallback when nothing matches.
const (
	Monitoring      Category = "monitoring"
	CiCd            Category = "ci_cd"
	Database        Category = "database"
	Cloud           Category = "cloud"
	MachineLearning Category = "machine_learning"
	Frontend        Category = "frontend"
	Backend         Category = "backend"
	DevOps          Category = "devops"
	Security        Category = "security"
	Testing         Category = "testing"
	General         Category = "general"
)

// IsValid checks if the category is one of the supported values.
func (c Category) IsValid() bool {
	switch c {
	case Monitoring, CiCd, Database, Cloud, MachineLearning,
		Frontend, Backend, DevOps, Security, Testing, General:
		return true
	}
	return false
}
