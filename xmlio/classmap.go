// File: classmap.go
// Role: class attribute / local-name dispatch (spec.md §4.E "A class
//       attribute, when present, names the concrete subtype; otherwise a
//       fixed class map translates the local element name.")

package xmlio

// resolveTaskClass returns "Communication" or "Task" for an <application>
// child, preferring an explicit class attribute over the local element
// name.
func resolveTaskClass(localName, class string) (string, error) {
	if class != "" {
		switch class {
		case "Task", "Communication":
			return class, nil
		default:
			return "", ErrUnknownClass
		}
	}
	switch localName {
	case elTask:
		return "Task", nil
	case elCommunication:
		return "Communication", nil
	default:
		return "", ErrUnknownClass
	}
}
