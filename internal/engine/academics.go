package engine

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"peak/internal/storage"
)

// UniTask is one milestone of a course module. Tasks are worked in order.
type UniTask struct {
	ID            int
	Text          string
	Specifics     string
	Prev          string
	Next          string
	InitiallyDone bool
}

type UniModule struct {
	ID        string
	Name      string
	Tech      string
	Advice    string
	Structure string
	Tasks     []UniTask
}

func builtinModules() []UniModule {
	return []UniModule{
		{
			ID:        "ai",
			Name:      "Artificial Intelligence",
			Tech:      "Python, Pandas, Scikit-learn, Jupyter Notebooks",
			Advice:    "Focus on the data pipeline: Cleaning -> Feature Engineering -> Split -> Train -> Eval. For churn prediction, use Random Forest or XGBoost.",
			Structure: "1. Data Analysis (EDA) 2. Preprocessing 3. Model Selection 4. Hyperparameter Tuning 5. Conclusion",
			Tasks: []UniTask{
				{ID: 1, Text: "Data Preprocessing (Pandas)", InitiallyDone: true,
					Specifics: "Load the CSV. Check for null values (df.isnull().sum()). One-hot encode categorical data (pd.get_dummies). Normalize numerical features.",
					Next:      "Churn Prediction Model"},
				{ID: 2, Text: "Churn Prediction Model",
					Specifics: "Train a RandomForestClassifier. Split data 80/20. Use SMOTE if the dataset is imbalanced.",
					Prev:      "Data Preprocessing", Next: "Model Evaluation Metrics"},
				{ID: 3, Text: "Model Evaluation Metrics",
					Specifics: "Go beyond accuracy: precision, recall and F1 (classification_report). Plot a confusion matrix.",
					Prev:      "Churn Prediction Model"},
			},
		},
		{
			ID:        "fyp",
			Name:      "Final Year Project",
			Tech:      "Android (Kotlin/Jetpack Compose) or Flutter (Dart). Python (FastAPI) for backend.",
			Advice:    "The brain should be an API (OpenAI/HuggingFace). The app is a UI wrapper; don't build the model on the phone.",
			Structure: "MVVM: Model (Data/API), View (UI), ViewModel (Logic).",
			Tasks: []UniTask{
				{ID: 1, Text: "Poster Submission", InitiallyDone: true,
					Specifics: "High-level overview of the project: the problem and the solution architecture. Minimal text, use diagrams.",
					Next:      "Core Feature Planning"},
				{ID: 2, Text: "Core Feature Planning",
					Specifics: "Define the MVP. What is the one thing the app must do? Avoid feature creep.",
					Prev:      "Poster Submission", Next: "UI Prototype"},
				{ID: 3, Text: "UI Prototype (Figma/XML)",
					Specifics: "Low-fidelity wireframe. Map the flow: Login -> Home -> Action -> Result.",
					Prev:      "Core Feature Planning", Next: "Summarization API Integration"},
				{ID: 4, Text: "Summarization API Integration",
					Specifics: "FastAPI backend calling OpenAI/HuggingFace. Test with Postman, then connect the app with Retrofit or Dio.",
					Prev:      "UI Prototype"},
			},
		},
		{
			ID:        "sec",
			Name:      "Secure Software Dev",
			Tech:      "Java/Python, OWASP ZAP, SonarQube",
			Advice:    "Focus on the OWASP Top 10. Defend against SQL injection, XSS and broken auth.",
			Structure: "1. Threat Modeling 2. Secure Design Patterns 3. Implementation 4. Security Testing",
			Tasks: []UniTask{
				{ID: 1, Text: "Review New Coursework Brief",
					Specifics: "Read the brief three times. Highlight which attack vectors must be mitigated and which language is required.",
					Next:      "Threat Modeling"},
				{ID: 2, Text: "Threat Modeling",
					Specifics: "Draw a data flow diagram with trust boundaries. Categorize threats with STRIDE.",
					Prev:      "Review Brief", Next: "Security Analysis Report"},
				{ID: 3, Text: "Security Analysis Report",
					Specifics: "Document every vulnerability and its countermeasure. Rate severity with CVSS where it applies.",
					Prev:      "Threat Modeling"},
			},
		},
	}
}

// ProgressStore persists roadmap task toggles.
type ProgressStore interface {
	LoadUniProgress(ctx context.Context) (storage.UniProgress, error)
	SaveUniProgress(ctx context.Context, p storage.UniProgress) error
}

// TaskStatus is a task with its current state. Next marks a task that is
// open while every task before it is done.
type TaskStatus struct {
	Task UniTask
	Done bool
	Next bool
}

type ModuleStatus struct {
	Module    UniModule
	Tasks     []TaskStatus
	Completed int
}

// Academics tracks progress through the course roadmap.
type Academics struct {
	store    ProgressStore
	logger   *log.Logger
	modules  []UniModule
	progress storage.UniProgress
}

// LoadAcademics reads stored toggles. Unreadable or corrupt data falls back
// to the built-in task states.
func LoadAcademics(ctx context.Context, store ProgressStore, logger *log.Logger) *Academics {
	if logger == nil {
		logger = discardLogger()
	}
	p, err := store.LoadUniProgress(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCorruptState) {
			logger.Printf("discarding uni progress: %v", err)
		} else {
			logger.Printf("load uni progress: %v", err)
		}
		p = nil
	}
	if p == nil {
		p = storage.UniProgress{}
	}
	return &Academics{store: store, logger: logger, modules: builtinModules(), progress: p}
}

func (a *Academics) done(module string, t UniTask) bool {
	if v, ok := a.progress[storage.UniTaskKey(module, t.ID)]; ok {
		return v
	}
	return t.InitiallyDone
}

func (a *Academics) status(m UniModule) ModuleStatus {
	ms := ModuleStatus{Module: m, Tasks: make([]TaskStatus, 0, len(m.Tasks))}
	prevDone := true
	for _, t := range m.Tasks {
		d := a.done(m.ID, t)
		ms.Tasks = append(ms.Tasks, TaskStatus{Task: t, Done: d, Next: !d && prevDone})
		if d {
			ms.Completed++
		}
		prevDone = d
	}
	return ms
}

// Modules returns every module in roadmap order.
func (a *Academics) Modules() []ModuleStatus {
	out := make([]ModuleStatus, 0, len(a.modules))
	for _, m := range a.modules {
		out = append(out, a.status(m))
	}
	return out
}

// Module looks a module up by ID or name, case-insensitively.
func (a *Academics) Module(input string) (ModuleStatus, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, m := range a.modules {
		if s == m.ID || s == strings.ToLower(m.Name) {
			return a.status(m), nil
		}
	}
	return ModuleStatus{}, ParseError{Kind: "module", Input: input}
}

// Task returns one task of a module.
func (a *Academics) Task(module string, task int) (ModuleStatus, TaskStatus, error) {
	ms, err := a.Module(module)
	if err != nil {
		return ModuleStatus{}, TaskStatus{}, err
	}
	for _, ts := range ms.Tasks {
		if ts.Task.ID == task {
			return ms, ts, nil
		}
	}
	return ModuleStatus{}, TaskStatus{}, ParseError{Kind: ms.Module.ID + " task", Input: strconv.Itoa(task)}
}

// Toggle flips a task's done state and persists every toggle.
func (a *Academics) Toggle(ctx context.Context, module string, task int) (TaskStatus, error) {
	ms, ts, err := a.Task(module, task)
	if err != nil {
		return TaskStatus{}, err
	}
	a.progress[storage.UniTaskKey(ms.Module.ID, task)] = !ts.Done
	if err := a.store.SaveUniProgress(ctx, a.progress); err != nil {
		a.logger.Printf("persist uni progress: %v", err)
	}
	_, ts, _ = a.Task(ms.Module.ID, task)
	return ts, nil
}

// reset restores the built-in task states in memory.
func (a *Academics) reset() {
	a.progress = storage.UniProgress{}
}
