package host

import "flmodel/policy"

// Version metadata for the host API. Calls without a Since value have been
// available since API version 1.
var (
	// channels
	opChannelCount        = policy.Op{Name: "channels.channelCount"}
	opChannelNumber       = policy.Op{Name: "channels.channelNumber"}
	opSelectedChannel     = policy.Op{Name: "channels.selectedChannel", Since: 5}
	opGetChannelIndex     = policy.Op{Name: "channels.getChannelIndex"}
	opGetChannelName      = policy.Op{Name: "channels.getChannelName"}
	opSetChannelName      = policy.Op{Name: "channels.setChannelName", Unsafe: true}
	opGetChannelColor     = policy.Op{Name: "channels.getChannelColor"}
	opSetChannelColor     = policy.Op{Name: "channels.setChannelColor", Unsafe: true}
	opGetChannelVolume    = policy.Op{Name: "channels.getChannelVolume"}
	opSetChannelVolume    = policy.Op{Name: "channels.setChannelVolume", Unsafe: true}
	opGetChannelPan       = policy.Op{Name: "channels.getChannelPan"}
	opSetChannelPan       = policy.Op{Name: "channels.setChannelPan", Unsafe: true}
	opIsChannelMuted      = policy.Op{Name: "channels.isChannelMuted"}
	opMuteChannel         = policy.Op{Name: "channels.muteChannel", Unsafe: true}
	opIsChannelSolo       = policy.Op{Name: "channels.isChannelSolo"}
	opSoloChannel         = policy.Op{Name: "channels.soloChannel", Unsafe: true}
	opIsChannelSelected   = policy.Op{Name: "channels.isChannelSelected"}
	opSelectChannel       = policy.Op{Name: "channels.selectChannel", Unsafe: true}
	opSelectOneChannel    = policy.Op{Name: "channels.selectOneChannel", Since: 8, Unsafe: true}
	opSelectAllChannels   = policy.Op{Name: "channels.selectAll", Unsafe: true}
	opDeselectAllChannels = policy.Op{Name: "channels.deselectAll", Unsafe: true}
	opGetChannelType      = policy.Op{Name: "channels.getChannelType", Since: 19}
	opGetTargetFxTrack    = policy.Op{Name: "channels.getTargetFxTrack"}
	opSetTargetFxTrack    = policy.Op{Name: "channels.setTargetFxTrack", Unsafe: true}
	opGetGridBit          = policy.Op{Name: "channels.getGridBit"}
	opSetGridBit          = policy.Op{Name: "channels.setGridBit", Unsafe: true}
	opProcessRECEvent     = policy.Op{Name: "channels.processRECEvent", Deprecated: 7, Unsafe: true}
	opGetActivityLevel    = policy.Op{Name: "channels.getActivityLevel", Since: 9}

	// patterns
	opPatternNumber       = policy.Op{Name: "patterns.patternNumber"}
	opPatternCount        = policy.Op{Name: "patterns.patternCount"}
	opPatternMax          = policy.Op{Name: "patterns.patternMax"}
	opGetPatternName      = policy.Op{Name: "patterns.getPatternName"}
	opSetPatternName      = policy.Op{Name: "patterns.setPatternName", Unsafe: true}
	opGetPatternColor     = policy.Op{Name: "patterns.getPatternColor"}
	opSetPatternColor     = policy.Op{Name: "patterns.setPatternColor", Unsafe: true}
	opJumpToPattern       = policy.Op{Name: "patterns.jumpToPattern", Unsafe: true}
	opSelectPattern       = policy.Op{Name: "patterns.selectPattern", Since: 2, Unsafe: true}
	opIsPatternSelected   = policy.Op{Name: "patterns.isPatternSelected", Since: 2}
	opSelectAllPatterns   = policy.Op{Name: "patterns.selectAll", Since: 2, Unsafe: true}
	opDeselectAllPatterns = policy.Op{Name: "patterns.deselectAll", Since: 2, Unsafe: true}
	opIsPatternDefault    = policy.Op{Name: "patterns.isPatternDefault", Since: 23}

	// general
	opSaveUndo            = policy.Op{Name: "general.saveUndo", Unsafe: true}
	opUndo                = policy.Op{Name: "general.undo", Unsafe: true}
	opUndoUp              = policy.Op{Name: "general.undoUp", Unsafe: true}
	opUndoDown            = policy.Op{Name: "general.undoDown", Unsafe: true}
	opUndoUpDown          = policy.Op{Name: "general.undoUpDown", Unsafe: true}
	opRestoreUndo         = policy.Op{Name: "general.restoreUndo", Unsafe: true}
	opRestoreUndoLevel    = policy.Op{Name: "general.restoreUndoLevel", Unsafe: true}
	opGetUndoLevelHint    = policy.Op{Name: "general.getUndoLevelHint"}
	opGetUndoHistoryPos   = policy.Op{Name: "general.getUndoHistoryPos"}
	opGetUndoHistoryCount = policy.Op{Name: "general.getUndoHistoryCount"}
	opGetUndoHistoryLast  = policy.Op{Name: "general.getUndoHistoryLast"}
	opSetUndoHistoryPos   = policy.Op{Name: "general.setUndoHistoryPos", Unsafe: true}
	opSetUndoHistoryCount = policy.Op{Name: "general.setUndoHistoryCount", Unsafe: true}
	opSetUndoHistoryLast  = policy.Op{Name: "general.setUndoHistoryLast", Unsafe: true}
	opGetVersion          = policy.Op{Name: "general.getVersion"}
	opGetRecPPQ           = policy.Op{Name: "general.getRecPPQ", Since: 8}
	opGetRecPPB           = policy.Op{Name: "general.getRecPPB"}
	opGetUseMetronome     = policy.Op{Name: "general.getUseMetronome"}
	opGetPrecount         = policy.Op{Name: "general.getPrecount"}
	opGetChangedFlag      = policy.Op{Name: "general.getChangedFlag"}

	// device
	opIsAssigned                    = policy.Op{Name: "device.isAssigned"}
	opGetPortNumber                 = policy.Op{Name: "device.getPortNumber"}
	opGetName                       = policy.Op{Name: "device.getName", Since: 7}
	opMidiOutMsg                    = policy.Op{Name: "device.midiOutMsg"}
	opMidiOutMsgParts               = policy.Op{Name: "device.midiOutMsg", Since: 2}
	opMidiOutSysex                  = policy.Op{Name: "device.midiOutSysex"}
	opSendMsgGeneric                = policy.Op{Name: "device.sendMsgGeneric", Deprecated: 9}
	opDispatchReceiverCount         = policy.Op{Name: "device.dispatchReceiverCount"}
	opDispatch                      = policy.Op{Name: "device.dispatch"}
	opDispatchGetReceiverPortNumber = policy.Op{Name: "device.dispatchGetReceiverPortNumber", Since: 5}
	opSetMasterSync                 = policy.Op{Name: "device.setMasterSync", Since: 18}
	opGetMasterSync                 = policy.Op{Name: "device.getMasterSync", Since: 19}

	// plugins
	opIsValid          = policy.Op{Name: "plugins.isValid", Since: 8}
	opGetPluginName    = policy.Op{Name: "plugins.getPluginName", Since: 8}
	opGetParamCount    = policy.Op{Name: "plugins.getParamCount", Since: 8}
	opGetParamName     = policy.Op{Name: "plugins.getParamName", Since: 8}
	opGetParamValue    = policy.Op{Name: "plugins.getParamValue", Since: 8}
	opSetParamValue    = policy.Op{Name: "plugins.setParamValue", Since: 8, Unsafe: true}
	opGetParamValueStr = policy.Op{Name: "plugins.getParamValueString", Since: 8}

	// transport
	opStart           = policy.Op{Name: "transport.start", Unsafe: true}
	opStop            = policy.Op{Name: "transport.stop", Unsafe: true}
	opRecord          = policy.Op{Name: "transport.record", Unsafe: true}
	opIsPlaying       = policy.Op{Name: "transport.isPlaying"}
	opIsRecording     = policy.Op{Name: "transport.isRecording"}
	opGetLoopMode     = policy.Op{Name: "transport.getLoopMode"}
	opSetLoopMode     = policy.Op{Name: "transport.setLoopMode", Unsafe: true}
	opGlobalTransport = policy.Op{Name: "transport.globalTransport", Unsafe: true}

	// ui
	opGetHintMsg = policy.Op{Name: "ui.getHintMsg"}
	opSetHintMsg = policy.Op{Name: "ui.setHintMsg"}
)

// keyOp describes a ui function that is delivered as a keystroke
func keyOp(name string) policy.Op {
	return policy.Op{Name: "ui." + name, KeyEcho: true, Unsafe: true}
}
