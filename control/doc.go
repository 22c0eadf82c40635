// Package control wires classifiers and inference nodes into a fuzzy
// controller with named crisp inputs and outputs.
//
// Every output is an inference node whose children are all inputs; its
// estimate is derived by the controller's method (Simple, Mamdani or
// RulesAccurate) using the controller's t-norm pair. Rules map input terms
// to output terms and are validated when registered.
//
//	c := control.New(control.WithMethod(control.MethodMamdani))
//	_ = c.DefineInput(map[string]*classifier.FuzzySet{"temp": temp, "load": load})
//	_ = c.DefineOutput(map[string]*classifier.FuzzySet{"fan": fan})
//	_ = c.AddRule(map[string]string{"temp": "hot"}, map[string]string{"fan": "fast"}, "")
//	_ = c.Set(map[string]float64{"temp": 31, "load": 0.4})
//	out := c.Get() // map[fan:…]
//
// Set invalidates memoized output estimates, so Get always reflects the
// latest inputs. A Controller is not safe for concurrent use.
package control
