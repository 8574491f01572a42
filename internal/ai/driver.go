package ai

// Driver is a scripted combat policy that drives one machine in the
// simulator. Skill selection stays out of the execution core; drivers are
// the external caller the core is designed against.
type Driver interface {
	Name() string
	Tick(dt float64)
}
