package menu

// User-facing text. Prompts carry no trailing newline; input is read on the
// same line.
const (
	menuText = "\n===== STUDENT MANAGER =====\n" +
		"1. Add a student\n" +
		"2. List all students\n" +
		"3. Delete a student (by ID)\n" +
		"4. Delete ALL students\n" +
		"0. Quit\n"

	promptChoice = "Your choice: "
	promptID     = "Enter ID (integer): "
	promptAge    = "Enter age (integer): "
	promptName   = "Enter name (max 49 characters): "
	promptDelete = "Enter the ID of the student to delete: "

	headerAdd    = "\n--- ADD A STUDENT ---\n"
	headerList   = "\n--- STUDENT LIST (%d) ---\n"
	headerDelete = "\n--- DELETE A STUDENT ---\n"

	msgInvalidChoice = "Invalid input. Please try again.\n"
	msgCancelled     = "Input error. Operation cancelled.\n"
	msgAdded         = "Student added successfully!\n"
	msgAllocFailed   = "Error: memory allocation failed.\n"
	msgListEmpty     = "The list is empty.\n"
	msgNothingDelete = "\nThe list is empty. Nothing to delete.\n"
	msgDeleted       = "Student with ID %d deleted and memory released.\n"
	msgNotFound      = "Error: student with ID %d not found.\n"
	msgAlreadyEmpty  = "\nThe list is already empty. Nothing to delete.\n"
	msgCleared       = "OK. %d students deleted and all memory released.\n"
	msgUnrecognized  = "Unrecognized choice. Please choose 0, 1, 2, 3 or 4.\n"
	msgGoodbye       = "Goodbye!\n"
	msgCleanup       = "\nMemory cleanup of %d students done. No leaks.\n"
)
