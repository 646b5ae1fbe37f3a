package combat

import "strconv"

// Task is a delayed callback, counted down once per frame. the ground-area
// archetype uses this for its post-arrival burst delay
type Task struct {
	Name  string
	F     TaskFunc
	Delay int //frames until execution

	originFrame int
}

func (t Task) String() string {
	return t.Name
}

type TaskFunc func(s *Sim)

func (s *Sim) runTasks() {
	for k, t := range s.tasks {
		if t.Delay == 0 {
			s.Log.Debugf("\t[%v] executing task %v, originated from frame %v", s.Frame(), k, t.originFrame)
			t.F(s)
			delete(s.tasks, k)
		} else {
			t.Delay--
			s.tasks[k] = t
		}
	}
}

// AddTask schedules f to run after delay frames
func (s *Sim) AddTask(f TaskFunc, name string, delay int) {
	key := name + "-" + strconv.Itoa(s.F) + "-" + strconv.Itoa(s.taskSeq)
	s.taskSeq++
	s.tasks[key] = Task{
		Name:        name,
		Delay:       delay,
		F:           f,
		originFrame: s.F,
	}
	s.Log.Debugf("\t task added: %v", key)
}
