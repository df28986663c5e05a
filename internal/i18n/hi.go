package i18n

import "github.com/abhisek/synthetica/internal/olympiad"

var hi = Strings{
	HeaderTitle:    "सिंथेटिका मैथमेटिका",
	HeaderSubtitle: "IMO-स्तरीय ज्यामिति",

	ModeSolve:     "समस्या हल करें",
	ModeGenerate:  "समस्या उत्पन्न करें",
	ModeWorkbench: "कार्यशाला (Workbench)",

	InputLabel:       "एक ज्यामिति समस्या दर्ज करें",
	InputPlaceholder: "उदा., एक त्रिभुज ABC में BC का मध्यबिंदु M है। सिद्ध करें कि AM < (AB + AC) / 2।",
	DomainLabel:      "IMO विषय",
	DifficultyLabel:  "समस्या की कठिनाई चुनें",

	GenerateConceptsLabel:       "मुख्य अवधारणाएँ (वैकल्पिक)",
	GenerateConceptsPlaceholder: "उदा., त्रिभुज असमानता, वृत्त",

	SynthesizeButton:   "संश्लेषित करें और खोजें",
	SynthesizingButton: "संश्लेषित हो रहा है...",
	GenerateButton:     "समस्या उत्पन्न करें",
	GeneratingButton:   "उत्पन्न हो रहा है...",

	StatusTitle:     "प्रदर्शन मेट्रिक्स",
	StatusSolveTime: "औसत समाधान समय",

	SynthesisFailed:  "संश्लेषण विफल रहा",
	GenerationFailed: "समस्या निर्माण विफल",

	ClassicProblemsTitle:    "या, किसी क्लासिक समस्या से शुरू करें:",
	ClassicsScreenTitle:     "क्लासिक समस्याएँ",
	VisualizationTabGraph:   "प्रमाण ग्राफ़",
	VisualizationTabDiagram: "ज्यामितीय आरेख",
	VisualizationTitle:      "प्रमाण संरचना ग्राफ़",
	VisualizationAwaiting:   "प्रमाण संरचना की प्रतीक्षा है...",

	SynthesisOutputTitle: "संश्लेषण आउटपुट",

	FormalizationTitle:        "औपचारिकता",
	FormalizationAwaiting:     "आउटपुट की प्रतीक्षा है...",
	FormalizationSynthesizing: "औपचारिक निरूपण संश्लेषित हो रहा है...",

	ReasoningTraceTitle:      "तर्क का पता",
	ReasoningTraceAwaiting:   "तर्क ट्रेस की प्रतीक्षा है...",
	ReasoningTraceGenerating: "तार्किक प्रमाण चरण उत्पन्न हो रहे हैं...",

	StepJustification: "औचित्य",
	StepDependencies:  "इस पर निर्भर करता है",

	GeneratedProblemTitle:  "उत्पन्न समस्या",
	SolveThisProblemButton: "इस समस्या को हल करें",

	SolutionMethods:   "समाधान के तरीके",
	SolutionElegance:  "लालित्य",
	InterconnectTitle: "अवधारणा अंतर्संबंध",

	WorkbenchTitle:                "सहयोगी प्रमाण कार्यशाला",
	WorkbenchProblemStatement:     "समस्या विवरण",
	WorkbenchProofSteps:           "प्रमाण के चरण",
	WorkbenchStepInputLabel:       "अगला चरण प्रस्तावित करें",
	WorkbenchStepInputPlaceholder: `उदा., "बिंदु D को AM पर ऐसे मानें कि..."`,
	WorkbenchAddStepButton:        "जोड़ें और सत्यापित करें",
	WorkbenchVerifyingButton:      "सत्यापित हो रहा है...",
	WorkbenchAwaitingInput:        "आपके पहले चरण की प्रतीक्षा है...",
	WorkbenchAIFeedback:           "AI फ़ीडबैक",
	WorkbenchAISuggestions:        "AI सुझाव",
	WorkbenchVerifyFailed:         "सत्यापन विफल",

	EleganceNames: map[olympiad.Elegance]string{
		olympiad.EleganceHigh:   "उच्च",
		olympiad.EleganceMedium: "मध्यम",
		olympiad.EleganceLow:    "कम",
	},
	SubjectNames: map[olympiad.Subject]string{
		olympiad.SubjectGeometry:      "ज्यामिति",
		olympiad.SubjectNumberTheory:  "संख्या सिद्धांत",
		olympiad.SubjectAlgebra:       "बीजगणित",
		olympiad.SubjectCombinatorics: "कॉम्बिनेटरिक्स",
	},
	DifficultyNames: map[olympiad.Difficulty]string{
		olympiad.DifficultyHighSchool:     "हाई स्कूल",
		olympiad.DifficultyUndergraduate:  "स्नातक",
		olympiad.DifficultyIMO:            "IMO स्तर",
		olympiad.DifficultyGrandChallenge: "ग्रैंड चैलेंज",
	},
}
