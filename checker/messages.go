/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package checker

import (
	"fmt"
	"strings"

	"github.com/KoichiKiyokawa/nitrogql/graphql/ast"
	"github.com/KoichiKiyokawa/nitrogql/internal/util"
)

// maxSuggestions limits the number of "Did you mean" candidates in a message.
const maxSuggestions = 5

// undefinedFieldMessage builds the message for a field selected on a type that does not define it.
// When the parent type is abstract, suggestedTypeNames lists possible types that do define the
// field; otherwise suggestedFieldNames lists similarly-spelled fields on the parent type.
func undefinedFieldMessage(
	fieldName string,
	parentTypeName string,
	suggestedTypeNames []string,
	suggestedFieldNames []string) string {

	var message strings.Builder
	message.WriteString(`Cannot query field "`)
	message.WriteString(fieldName)
	message.WriteString(`" on type "`)
	message.WriteString(parentTypeName)
	message.WriteString(`".`)

	if len(suggestedTypeNames) > 0 {
		message.WriteString(` Did you mean to use an inline fragment on `)
		message.WriteString(util.OrList(suggestedTypeNames, maxSuggestions, true))
		message.WriteString(`?`)
	} else if len(suggestedFieldNames) > 0 {
		message.WriteString(` Did you mean `)
		message.WriteString(util.OrList(suggestedFieldNames, maxSuggestions, true))
		message.WriteString(`?`)
	}

	return message.String()
}

func noSubselectionAllowedMessage(fieldName string, typeName string) string {
	return fmt.Sprintf(
		`Field "%s" must not have a selection since type "%s" has no subfields.`,
		fieldName, typeName)
}

func requiredSubselectionMessage(fieldName string, typeName string) string {
	return fmt.Sprintf(
		`Field "%s" of type "%s" must have a selection of subfields. Did you mean "%s { ... }"?`,
		fieldName, typeName, fieldName)
}

func unknownArgMessage(argName string, fieldName string, typeName string, suggestions []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Unknown argument "%s" on field "%s" of type "%s".`,
		argName, fieldName, typeName)
	if len(suggestions) > 0 {
		message.WriteString(` Did you mean `)
		message.WriteString(util.OrList(suggestions, maxSuggestions, true))
		message.WriteString(`?`)
	}
	return message.String()
}

func unknownDirectiveArgMessage(argName string, directiveName string, suggestions []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Unknown argument "%s" on directive "@%s".`, argName, directiveName)
	if len(suggestions) > 0 {
		message.WriteString(` Did you mean `)
		message.WriteString(util.OrList(suggestions, maxSuggestions, true))
		message.WriteString(`?`)
	}
	return message.String()
}

func missingFieldArgMessage(fieldName string, argName string, typeName string) string {
	return fmt.Sprintf(
		`Field "%s" argument "%s" of type "%s" is required, but it was not provided.`,
		fieldName, argName, typeName)
}

func missingDirectiveArgMessage(directiveName string, argName string, typeName string) string {
	return fmt.Sprintf(
		`Directive "@%s" argument "%s" of type "%s" is required, but it was not provided.`,
		directiveName, argName, typeName)
}

func duplicateArgMessage(argName string) string {
	return fmt.Sprintf(`There can be only one argument named "%s".`, argName)
}

func unknownDirectiveMessage(directiveName string) string {
	return fmt.Sprintf(`Unknown directive "@%s".`, directiveName)
}

func misplacedDirectiveMessage(directiveName string, location string) string {
	return fmt.Sprintf(`Directive "@%s" may not be used on %s.`, directiveName, location)
}

func duplicateDirectiveMessage(directiveName string) string {
	return fmt.Sprintf(`The directive "@%s" can only be used once at this location.`, directiveName)
}

func unknownTypeMessage(typeName string, suggestions []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Unknown type "%s".`, typeName)
	if len(suggestions) > 0 {
		message.WriteString(` Did you mean `)
		message.WriteString(util.OrList(suggestions, maxSuggestions, true))
		message.WriteString(`?`)
	}
	return message.String()
}

func unknownFragmentMessage(fragmentName string) string {
	return fmt.Sprintf(`Unknown fragment "%s".`, fragmentName)
}

func unusedFragmentMessage(fragmentName string) string {
	return fmt.Sprintf(`Fragment "%s" is never used.`, fragmentName)
}

func cycleErrorMessage(fragmentName string, spreadNames []string) string {
	var via string
	if len(spreadNames) > 0 {
		via = " via " + strings.Join(spreadNames, ", ")
	}
	return fmt.Sprintf(`Cannot spread fragment "%s" within itself%s.`, fragmentName, via)
}

func fragmentOnNonCompositeMessage(fragmentName string, typeName string) string {
	return fmt.Sprintf(`Fragment "%s" cannot condition on non composite type "%s".`,
		fragmentName, typeName)
}

func inlineFragmentOnNonCompositeMessage(typeName string) string {
	return fmt.Sprintf(`Fragment cannot condition on non composite type "%s".`, typeName)
}

func typeIncompatibleSpreadMessage(fragmentName string, parentTypeName string, typeName string) string {
	return fmt.Sprintf(
		`Fragment "%s" cannot be spread here as objects of type "%s" can never be of type "%s".`,
		fragmentName, parentTypeName, typeName)
}

func typeIncompatibleAnonSpreadMessage(parentTypeName string, typeName string) string {
	return fmt.Sprintf(
		`Fragment cannot be spread here as objects of type "%s" can never be of type "%s".`,
		parentTypeName, typeName)
}

func duplicateVariableMessage(variableName string) string {
	return fmt.Sprintf(`There can be only one variable named "$%s".`, variableName)
}

func nonInputTypeOnVarMessage(variableName string, typeName string) string {
	return fmt.Sprintf(`Variable "$%s" cannot be non-input type "%s".`, variableName, typeName)
}

func undefinedVarMessage(variableName string, operationName string) string {
	if len(operationName) > 0 {
		return fmt.Sprintf(`Variable "$%s" is not defined by operation "%s".`,
			variableName, operationName)
	}
	return fmt.Sprintf(`Variable "$%s" is not defined.`, variableName)
}

func unusedVariableMessage(variableName string, operationName string) string {
	if len(operationName) > 0 {
		return fmt.Sprintf(`Variable "$%s" is never used in operation "%s".`,
			variableName, operationName)
	}
	return fmt.Sprintf(`Variable "$%s" is never used.`, variableName)
}

func badVarPosMessage(variableName string, varType string, expectedType string) string {
	return fmt.Sprintf(`Variable "$%s" of type "%s" used in position expecting type "%s".`,
		variableName, varType, expectedType)
}

func badValueMessage(typeName string, valueName string, suggestions []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Expected type %s, found %s.`, typeName, valueName)
	if len(suggestions) > 0 {
		message.WriteString(` Did you mean the enum value `)
		message.WriteString(util.OrList(suggestions, maxSuggestions, false))
		message.WriteString(`?`)
	}
	return message.String()
}

func requiredFieldMessage(typeName string, fieldName string, fieldTypeName string) string {
	return fmt.Sprintf(`Field %s.%s of required type %s was not provided.`,
		typeName, fieldName, fieldTypeName)
}

func unknownFieldMessage(typeName string, fieldName string, suggestions []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Field "%s" is not defined by type %s.`, fieldName, typeName)
	if len(suggestions) > 0 {
		message.WriteString(` Did you mean `)
		message.WriteString(util.OrList(suggestions, maxSuggestions, true))
		message.WriteString(`?`)
	}
	return message.String()
}

func duplicateInputFieldMessage(fieldName string) string {
	return fmt.Sprintf(`There can be only one input field named "%s".`, fieldName)
}

func deprecatedFieldMessage(typeName string, fieldName string, reason string) string {
	message := fmt.Sprintf(`The field "%s.%s" is deprecated.`, typeName, fieldName)
	if len(reason) > 0 {
		message += " " + reason
	}
	return message
}

func missingRootTypeMessage(operationType ast.OperationType) string {
	var plural string
	switch operationType {
	case ast.OperationTypeQuery:
		plural = "queries"
	case ast.OperationTypeMutation:
		plural = "mutations"
	default:
		plural = "subscriptions"
	}
	return fmt.Sprintf(`Schema is not configured for %s.`, plural)
}
