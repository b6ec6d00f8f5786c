package user

type Role string

const (
	RoleOwner  Role = "owner"
	RoleWorker Role = "worker"
)

var RoleValues = []string{
	string(RoleOwner),
	string(RoleWorker),
}
